package analysis

import "github.com/eleven-am/uxlens/internal/i18n"

var messages = i18n.Catalog{
	i18n.English: {
		"lowres.title":       "Low Image Resolution",
		"lowres.description": "The screenshot is only {width}x{height} pixels, below the 400 pixel minimum for reliable review.",
		"lowres.suggestion":  "Capture the interface at a higher resolution, at least 400 pixels on each side.",
		"lowres.impact":      "Small details and text may be missed or misjudged during analysis.",

		"text.title":           "Text Content Needs Accessible Labels",
		"text.description":     "Detected text \"{text}\" (key words: {keywords}). Make sure it is exposed to screen readers.",
		"text.description_box": "Detected text \"{text}\" (key words: {keywords}) near x={x}, y={y} ({w}x{h}px). Make sure it is exposed to screen readers.",
		"text.suggestion":      "Use real text or ARIA labels instead of text baked into images, and check contrast against the background.",
		"text.impact":          "Screen reader users may not be able to access this content.",

		"person.title":       "People Detected in Interface",
		"person.description": "The screenshot appears to contain one or more people.",
		"person.suggestion":  "Confirm consent for any personal imagery and provide descriptive alternative text.",
		"person.impact":      "Privacy and consent issues, and inaccessible content for screen reader users.",

		"duplicate.title":       "Repeated Element: {name}",
		"duplicate.description": "The element \"{name}\" appears {count} times in the interface.",
		"duplicate.suggestion":  "Check whether the repeated {name} elements are intentional and clearly distinguishable.",
		"duplicate.impact":      "Repeated elements can confuse users about which one to interact with.",

		"complexity.title":       "High Visual Complexity",
		"complexity.description": "Many distinct visual elements were detected: {labels}.",
		"complexity.suggestion":  "Simplify the layout and group related elements to reduce visual clutter.",
		"complexity.impact":      "Users may struggle to find key actions and feel overwhelmed.",
	},
	i18n.Spanish: {
		"lowres.title":       "Resolución de Imagen Baja",
		"lowres.description": "La captura mide solo {width}x{height} píxeles, por debajo del mínimo de 400 píxeles para una revisión fiable.",
		"lowres.suggestion":  "Capture la interfaz con mayor resolución, al menos 400 píxeles por lado.",
		"lowres.impact":      "Los detalles pequeños y el texto pueden pasarse por alto durante el análisis.",

		"text.title":           "El Contenido de Texto Necesita Etiquetas Accesibles",
		"text.description":     "Texto detectado \"{text}\" (palabras clave: {keywords}). Asegúrese de que sea accesible para lectores de pantalla.",
		"text.description_box": "Texto detectado \"{text}\" (palabras clave: {keywords}) cerca de x={x}, y={y} ({w}x{h}px). Asegúrese de que sea accesible para lectores de pantalla.",
		"text.suggestion":      "Use texto real o etiquetas ARIA en lugar de texto incrustado en imágenes y revise el contraste con el fondo.",
		"text.impact":          "Los usuarios de lectores de pantalla podrían no acceder a este contenido.",

		"person.title":       "Personas Detectadas en la Interfaz",
		"person.description": "La captura parece contener una o más personas.",
		"person.suggestion":  "Confirme el consentimiento para las imágenes personales y proporcione texto alternativo descriptivo.",
		"person.impact":      "Problemas de privacidad y consentimiento, y contenido inaccesible para lectores de pantalla.",

		"duplicate.title":       "Elemento Repetido: {name}",
		"duplicate.description": "El elemento \"{name}\" aparece {count} veces en la interfaz.",
		"duplicate.suggestion":  "Compruebe si los elementos {name} repetidos son intencionados y se distinguen claramente.",
		"duplicate.impact":      "Los elementos repetidos pueden confundir a los usuarios sobre con cuál interactuar.",

		"complexity.title":       "Alta Complejidad Visual",
		"complexity.description": "Se detectaron muchos elementos visuales distintos: {labels}.",
		"complexity.suggestion":  "Simplifique el diseño y agrupe los elementos relacionados para reducir el desorden visual.",
		"complexity.impact":      "Los usuarios pueden tener dificultades para encontrar las acciones clave.",
	},
	i18n.Finnish: {
		"lowres.title":       "Matala Kuvan Resoluutio",
		"lowres.description": "Kuvakaappaus on vain {width}x{height} pikseliä, alle luotettavan tarkastelun 400 pikselin vähimmäiskoon.",
		"lowres.suggestion":  "Ota kuvakaappaus suuremmalla resoluutiolla, vähintään 400 pikseliä kummallakin sivulla.",
		"lowres.impact":      "Pienet yksityiskohdat ja teksti voivat jäädä huomaamatta analyysissä.",

		"text.title":           "Tekstisisältö Tarvitsee Saavutettavat Nimet",
		"text.description":     "Havaittu teksti \"{text}\" (avainsanat: {keywords}). Varmista, että se on ruudunlukijoiden saatavilla.",
		"text.description_box": "Havaittu teksti \"{text}\" (avainsanat: {keywords}) kohdassa x={x}, y={y} ({w}x{h}px). Varmista, että se on ruudunlukijoiden saatavilla.",
		"text.suggestion":      "Käytä oikeaa tekstiä tai ARIA-nimiä kuviin upotetun tekstin sijaan ja tarkista kontrasti taustaan nähden.",
		"text.impact":          "Ruudunlukijan käyttäjät eivät välttämättä pääse tähän sisältöön.",

		"person.title":       "Käyttöliittymässä Havaittu Ihmisiä",
		"person.description": "Kuvakaappaus näyttää sisältävän yhden tai useamman ihmisen.",
		"person.suggestion":  "Varmista suostumus henkilökuviin ja lisää kuvaava vaihtoehtoinen teksti.",
		"person.impact":      "Yksityisyys- ja suostumusongelmia sekä ruudunlukijoille saavuttamatonta sisältöä.",

		"duplicate.title":       "Toistuva Elementti: {name}",
		"duplicate.description": "Elementti \"{name}\" esiintyy {count} kertaa käyttöliittymässä.",
		"duplicate.suggestion":  "Tarkista, ovatko toistuvat {name}-elementit tarkoituksellisia ja selvästi erotettavissa.",
		"duplicate.impact":      "Toistuvat elementit voivat hämmentää käyttäjiä siitä, mitä käyttää.",

		"complexity.title":       "Korkea Visuaalinen Monimutkaisuus",
		"complexity.description": "Havaittiin monia erillisiä visuaalisia elementtejä: {labels}.",
		"complexity.suggestion":  "Yksinkertaista asettelua ja ryhmittele toisiinsa liittyvät elementit.",
		"complexity.impact":      "Käyttäjien voi olla vaikea löytää keskeisiä toimintoja.",
	},
}
