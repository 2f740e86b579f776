package localization

import "github.com/eleven-am/uxlens/internal/i18n"

var messages = i18n.Catalog{
	i18n.English: {
		"date.title":            "Date Format",
		"date.description":      "Date conventions for {country}.",
		"currency.title":        "Currency",
		"currency.description":  "Currency conventions for {country}.",
		"formality.title":       "Tone and Formality",
		"formality.description": "Expected tone of address in {country}.",

		"dynamic_currency.title":       "Currency Symbol Mismatch",
		"dynamic_currency.description": "The interface shows a '$' symbol, which may not match the currency used in {country}.",
		"dynamic_currency.advice":      "Update prices for {country}. {rule}",
		"dynamic_date.title":           "US Date Format Detected",
		"dynamic_date.description":     "The interface shows the date {found} in MM/DD/YYYY format, which is not standard in {country}.",
		"dynamic_date.advice":          "Adjust dates for {country}. {rule}",

		"no_rules.title":       "No Localization Rules",
		"no_rules.description": "There are no localization rules for the market \"{market}\".",
		"no_rules.advice":      "Review formats and tone manually with someone familiar with the target market.",
		"all_good.title":       "No Localization Issues",
		"all_good.description": "No specific localization concerns were found for {country}.",
		"all_good.advice":      "Keep following the existing conventions for {country}.",
	},
	i18n.Spanish: {
		"date.title":            "Formato de Fecha",
		"date.description":      "Convenciones de fecha para {country}.",
		"currency.title":        "Moneda",
		"currency.description":  "Convenciones de moneda para {country}.",
		"formality.title":       "Tono y Formalidad",
		"formality.description": "Tratamiento esperado en {country}.",

		"dynamic_currency.title":       "Símbolo de Moneda Incorrecto",
		"dynamic_currency.description": "La interfaz muestra el símbolo '$', que puede no corresponder a la moneda de {country}.",
		"dynamic_currency.advice":      "Actualice los precios para {country}. {rule}",
		"dynamic_date.title":           "Formato de Fecha de EE. UU. Detectado",
		"dynamic_date.description":     "La interfaz muestra la fecha {found} en formato MM/DD/YYYY, que no es estándar en {country}.",
		"dynamic_date.advice":          "Ajuste las fechas para {country}. {rule}",

		"no_rules.title":       "Sin Reglas de Localización",
		"no_rules.description": "No hay reglas de localización para el mercado \"{market}\".",
		"no_rules.advice":      "Revise manualmente los formatos y el tono con alguien que conozca el mercado objetivo.",
		"all_good.title":       "Sin Problemas de Localización",
		"all_good.description": "No se encontraron problemas específicos de localización para {country}.",
		"all_good.advice":      "Siga aplicando las convenciones actuales para {country}.",
	},
	i18n.Finnish: {
		"date.title":            "Päivämäärämuoto",
		"date.description":      "Päivämääräkäytännöt: {country}.",
		"currency.title":        "Valuutta",
		"currency.description":  "Valuuttakäytännöt: {country}.",
		"formality.title":       "Sävy ja Muodollisuus",
		"formality.description": "Odotettu puhuttelutapa: {country}.",

		"dynamic_currency.title":       "Väärä Valuuttasymboli",
		"dynamic_currency.description": "Käyttöliittymässä näkyy '$'-symboli, joka ei välttämättä vastaa markkina-alueen {country} valuuttaa.",
		"dynamic_currency.advice":      "Päivitä hinnat markkina-alueelle {country}. {rule}",
		"dynamic_date.title":           "Yhdysvaltalainen Päivämäärämuoto Havaittu",
		"dynamic_date.description":     "Käyttöliittymässä näkyy päivämäärä {found} muodossa MM/DD/YYYY, joka ei ole vakiomuoto markkina-alueella {country}.",
		"dynamic_date.advice":          "Muuta päivämäärät markkina-alueelle {country}. {rule}",

		"no_rules.title":       "Ei Lokalisointisääntöjä",
		"no_rules.description": "Markkina-alueelle \"{market}\" ei ole lokalisointisääntöjä.",
		"no_rules.advice":      "Tarkista muodot ja sävy käsin kohdemarkkinat tuntevan henkilön kanssa.",
		"all_good.title":       "Ei Lokalisointiongelmia",
		"all_good.description": "Markkina-alueelle {country} ei löytynyt erityisiä lokalisointiongelmia.",
		"all_good.advice":      "Jatka nykyisten käytäntöjen noudattamista: {country}.",
	},
}
