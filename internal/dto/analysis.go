package dto

type AnalyzeRequest struct {
	SessionID string `json:"session_id" example:"sess_3f9a"`
	Image     string `json:"image" example:"iVBORw0KGgoAAAANSUhEUgAA..."`
	ImageName string `json:"image_name" example:"checkout.png"`
	Language  string `json:"language" example:"en"`
	Market    string `json:"market" example:"FI"`
	Width     int    `json:"width,omitempty" example:"1280"`
	Height    int    `json:"height,omitempty" example:"800"`
}

type CoordinatesResponse struct {
	X      int `json:"x" example:"20"`
	Y      int `json:"y" example:"40"`
	Width  int `json:"width" example:"60"`
	Height int `json:"height" example:"20"`
}

type FindingResponse struct {
	ID          string               `json:"id" example:"text-content"`
	Category    string               `json:"category" example:"accessibility"`
	Severity    string               `json:"severity" example:"high"`
	Title       string               `json:"title" example:"Text Content Needs Accessible Labels"`
	Description string               `json:"description"`
	Suggestion  string               `json:"suggestion"`
	Impact      string               `json:"impact"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}

type AdviceResponse struct {
	ID          string `json:"id" example:"dynamic-currency"`
	Title       string `json:"title" example:"Currency Symbol Mismatch"`
	Description string `json:"description"`
	Advice      string `json:"advice"`
	Category    string `json:"category" example:"format"`
}

type ImageResponse struct {
	ID         string `json:"id" example:"5b1c7e0e-0d7b-4f0e-9a55-0f3c2b1b9e11"`
	Name       string `json:"name" example:"checkout.png"`
	Size       int64  `json:"size" example:"182044"`
	MimeType   string `json:"mime_type" example:"image/png"`
	UploadDate string `json:"upload_date" example:"2024-01-15T10:30:00Z"`
}

type SummaryCounts struct {
	Total    int `json:"total" example:"4"`
	Critical int `json:"critical" example:"0"`
	High     int `json:"high" example:"2"`
	Medium   int `json:"medium" example:"1"`
	Low      int `json:"low" example:"1"`
}

type DetectedLabel struct {
	Description string  `json:"description" example:"Screenshot"`
	Score       float64 `json:"score" example:"0.95"`
}

type DetectedText struct {
	Text        string               `json:"text" example:"$45.00"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}

type DetectedObject struct {
	Name        string               `json:"name" example:"Button"`
	Score       float64              `json:"score" example:"0.87"`
	Coordinates *CoordinatesResponse `json:"coordinates,omitempty"`
}

type DetectionsResponse struct {
	FullText string           `json:"full_text" example:"Total: $45.00"`
	Labels   []DetectedLabel  `json:"labels"`
	Text     []DetectedText   `json:"text"`
	Objects  []DetectedObject `json:"objects"`
}

type AnalysisResponse struct {
	SessionID   string             `json:"session_id" example:"sess_3f9a"`
	Sequence    int64              `json:"sequence" example:"3"`
	Image       ImageResponse      `json:"image"`
	Language    string             `json:"language" example:"en"`
	Market      string             `json:"market" example:"FI"`
	Source      string             `json:"source" example:"remote"`
	Width       int                `json:"width" example:"1280"`
	Height      int                `json:"height" example:"800"`
	Summary     SummaryCounts      `json:"summary"`
	Findings    []FindingResponse  `json:"findings"`
	Advice      []AdviceResponse   `json:"advice"`
	Detections  DetectionsResponse `json:"detections"`
	GeneratedAt string             `json:"generated_at" example:"2024-01-15T10:30:00Z"`
}

type MarketResponse struct {
	Code string `json:"code" example:"FI"`
	Name string `json:"name" example:"Finland"`
}

type MarketListResponse struct {
	Markets []MarketResponse `json:"markets"`
}

type UploadLimitDetails struct {
	SizeBytes  int64 `json:"size_bytes" example:"12582912"`
	LimitBytes int64 `json:"limit_bytes" example:"10485760"`
}
