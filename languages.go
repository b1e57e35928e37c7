package glot

// languages lists the supported languages in registry definition order.
// Codes are not unique: "English (US)" and "English (UK)" both map to "en".
var languages = []Language{
	{"English (US)", "en"}, {"English (UK)", "en"}, {"Turkish", "tr"}, {"French", "fr"},
	{"German", "de"}, {"Spanish", "es"}, {"Portuguese", "pt"}, {"Italian", "it"},
	{"Japanese", "ja"}, {"Korean", "ko"}, {"Chinese (Simplified)", "zh-cn"},
	{"Chinese (Traditional)", "zh-tw"}, {"Arabic", "ar"}, {"Russian", "ru"},
	{"Dutch", "nl"}, {"Polish", "pl"}, {"Greek", "el"}, {"Hebrew", "he"},
	{"Hindi", "hi"}, {"Thai", "th"}, {"Vietnamese", "vi"}, {"Indonesian", "id"},
	{"Malay", "ms"}, {"Filipino", "tl"}, {"Swedish", "sv"}, {"Norwegian", "no"},
	{"Danish", "da"}, {"Finnish", "fi"}, {"Czech", "cs"}, {"Slovak", "sk"},
	{"Hungarian", "hu"}, {"Romanian", "ro"}, {"Bulgarian", "bg"}, {"Croatian", "hr"},
	{"Serbian", "sr"}, {"Ukrainian", "uk"}, {"Lithuanian", "lt"}, {"Latvian", "lv"},
	{"Estonian", "et"}, {"Slovenian", "sl"}, {"Catalan", "ca"}, {"Basque", "eu"},
	{"Galician", "gl"}, {"Welsh", "cy"}, {"Irish", "ga"}, {"Icelandic", "is"},
	{"Maltese", "mt"}, {"Esperanto", "eo"}, {"Latin", "la"}, {"Persian", "fa"},
	{"Urdu", "ur"}, {"Bengali", "bn"}, {"Tamil", "ta"}, {"Telugu", "te"},
	{"Gujarati", "gu"}, {"Punjabi", "pa"}, {"Marathi", "mr"}, {"Kannada", "kn"},
	{"Malayalam", "ml"}, {"Sinhalese", "si"}, {"Nepali", "ne"}, {"Burmese", "my"},
	{"Khmer", "km"}, {"Lao", "lo"}, {"Georgian", "ka"}, {"Armenian", "hy"},
	{"Azerbaijani", "az"}, {"Kazakh", "kk"}, {"Kyrgyz", "ky"}, {"Uzbek", "uz"},
	{"Tajik", "tg"}, {"Mongolian", "mn"}, {"Tibetan", "bo"}, {"Swahili", "sw"},
	{"Amharic", "am"}, {"Somali", "so"}, {"Zulu", "zu"}, {"Xhosa", "xh"},
	{"Afrikaans", "af"}, {"Hausa", "ha"}, {"Yoruba", "yo"}, {"Igbo", "ig"},
}

// localeByCode maps ISO codes to BCP-47 locales for text-to-speech engines,
// which need locale-specific codes ("en-US" rather than "en"). The map is a
// partial function; absent codes fall back to the code itself.
var localeByCode = map[string]string{
	"en": "en-US", "tr": "tr-TR", "fr": "fr-FR", "de": "de-DE",
	"es": "es-ES", "pt": "pt-BR", "it": "it-IT", "ja": "ja-JP",
	"ko": "ko-KR", "zh-cn": "zh-CN", "zh-tw": "zh-TW", "ar": "ar-SA",
	"ru": "ru-RU", "nl": "nl-NL", "pl": "pl-PL", "el": "el-GR",
	"he": "he-IL", "hi": "hi-IN", "th": "th-TH", "vi": "vi-VN",
	"id": "id-ID", "ms": "ms-MY", "tl": "tl-PH", "sv": "sv-SE",
	"no": "no-NO", "da": "da-DK", "fi": "fi-FI", "cs": "cs-CZ",
	"sk": "sk-SK", "hu": "hu-HU", "ro": "ro-RO", "bg": "bg-BG",
	"hr": "hr-HR", "sr": "sr-RS", "uk": "uk-UA", "lt": "lt-LT",
	"lv": "lv-LV", "et": "et-EE", "sl": "sl-SI", "ca": "ca-ES",
	"cy": "cy-GB", "ga": "ga-IE", "is": "is-IS", "mt": "mt-MT",
	"fa": "fa-IR", "ur": "ur-PK", "bn": "bn-IN", "ta": "ta-IN",
	"te": "te-IN", "gu": "gu-IN", "pa": "pa-IN", "mr": "mr-IN",
	"kn": "kn-IN", "ml": "ml-IN", "si": "si-LK", "ne": "ne-NP",
	"my": "my-MM", "km": "km-KH", "lo": "lo-LA", "ka": "ka-GE",
	"hy": "hy-AM", "az": "az-AZ", "kk": "kk-KZ", "ky": "ky-KG",
	"uz": "uz-UZ", "tg": "tg-TJ", "mn": "mn-MN", "sw": "sw-KE",
	"am": "am-ET", "so": "so-SO", "zu": "zu-ZA", "xh": "xh-ZA",
	"af": "af-ZA", "ha": "ha-NG", "yo": "yo-NG", "ig": "ig-NG",
}

var (
	codeByName  map[string]string
	namesByCode map[string][]string
)

func init() {
	codeByName = make(map[string]string, len(languages))
	namesByCode = make(map[string][]string, len(languages))
	for _, l := range languages {
		codeByName[l.Name] = l.Code
		namesByCode[l.Code] = append(namesByCode[l.Code], l.Name)
	}
}

// Languages returns the supported languages in definition order.
// The returned slice is a copy and safe to mutate.
func Languages() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// LanguageNames returns all display names in definition order.
func LanguageNames() []string {
	out := make([]string, len(languages))
	for i, l := range languages {
		out[i] = l.Name
	}
	return out
}

// CodeOf returns the ISO code for a display name.
func CodeOf(name string) (string, bool) {
	code, ok := codeByName[name]
	return code, ok
}

// NamesFor returns every display name registered for an ISO code, in
// definition order. Codes can have several names ("en" has two), so the
// reverse lookup is list-valued rather than collapsing to one winner.
func NamesFor(code string) []string {
	names := namesByCode[code]
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// LocaleFor maps an ISO code to its BCP-47 text-to-speech locale.
// Unknown codes are returned unchanged.
func LocaleFor(code string) string {
	if locale, ok := localeByCode[code]; ok {
		return locale
	}
	return code
}
