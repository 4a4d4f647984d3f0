package i18n

// Translator retrieves localized messages for error codes.
// data provides optional metadata to embed in the message (for example,
// "property" or "source"); the built-in dictionaries ignore it.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "missing_value":
			return "必須キーに対応する値が見つかりません"
		case "invalid_value":
			return "値を対象の型に変換できません"
		case "invalid_date":
			return "日付として解析できません:"
		case "validation_failed":
			return "バリデーションに失敗しました:"
		case "wrapped":
			return "内部エラー"
		case "decode_property":
			return "プロパティのデコードに失敗しました:"
		case "decode_type":
			return "型のデコードに失敗しました:"
		}
	default: // "en"
		switch code {
		case "missing_value":
			return "no value found for required key"
		case "invalid_value":
			return "value does not match the expected type"
		case "invalid_date":
			return "could not parse date from"
		case "validation_failed":
			return "validation failed for property"
		case "wrapped":
			return "wrapped underlying error"
		case "decode_property":
			return "failed to decode property"
		case "decode_type":
			return "failed to decode type"
		}
	}
	return code
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
