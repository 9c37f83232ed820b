package i18n

import (
	"strings"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional values to embed in the message (for example,
// "expected" or "key"). The "type" entry selects a variant of the message
// ("string", "array", "number") and "exact" switches length messages to the
// exact-length form.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var catalog = map[string]map[string]string{
	"en": {
		"invalid_type":               "Expected {expected}, received {received}",
		"invalid_type.plain":         "Invalid input",
		"required":                   "Required",
		"too_short.string":           "String must contain at least {min} character(s)",
		"too_short.string.exact":     "String must contain exactly {min} character(s)",
		"too_short.array":            "Array must contain at least {min} element(s)",
		"too_short.number":           "Number must be greater than or equal to {min}",
		"too_long.string":            "String must contain at most {max} character(s)",
		"too_long.string.exact":      "String must contain exactly {max} character(s)",
		"too_long.array":             "Array must contain at most {max} element(s)",
		"too_long.number":            "Number must be less than or equal to {max}",
		"invalid_format":             "Invalid {format}",
		"invalid_format.plain":       "Invalid",
		"invalid_literal":            "Invalid literal value, expected {expected}",
		"invalid_enum":               "Invalid enum value. Expected {options}, received '{received}'",
		"invalid_discriminator":      "Invalid discriminator value. Expected {options}",
		"invalid_union":              "Invalid input",
		"unrecognized_key":           "Unrecognized key(s) in object: '{key}'",
		"cross_field_violation":      "Invalid input",
		"duplicate_value":            "Duplicate value",
		"duplicate_value.key":        "Duplicate key '{key}'",
		"parse_error":                "Parse error: {detail}",
		"parse_error.plain":          "Parse error",
		"truncated":                  "Input exceeds the {limit} limit",
		"invalid_type.integer":       "Expected integer, received float",
		"invalid_format.nonpositive": "Number must be greater than 0",
	},
	"ja": {
		"invalid_type":               "{expected} が必要ですが {received} が渡されました",
		"invalid_type.plain":         "型が不正です",
		"required":                   "必須です",
		"too_short.string":           "{min} 文字以上で入力してください",
		"too_short.string.exact":     "{min} 文字で入力してください",
		"too_short.array":            "{min} 個以上の要素が必要です",
		"too_short.number":           "{min} 以上の数値が必要です",
		"too_long.string":            "{max} 文字以下で入力してください",
		"too_long.string.exact":      "{max} 文字で入力してください",
		"too_long.array":             "{max} 個以下の要素にしてください",
		"too_long.number":            "{max} 以下の数値が必要です",
		"invalid_format":             "{format} の形式が不正です",
		"invalid_format.plain":       "形式が不正です",
		"invalid_literal":            "リテラル値が不正です。{expected} が必要です",
		"invalid_enum":               "列挙値が不正です。{options} のいずれかが必要ですが '{received}' が渡されました",
		"invalid_discriminator":      "判別子の値が不正です。{options} のいずれかが必要です",
		"invalid_union":              "いずれの候補にも一致しません",
		"unrecognized_key":           "未知のキーです: '{key}'",
		"cross_field_violation":      "フィールド間の制約に違反しています",
		"duplicate_value":            "値が重複しています",
		"duplicate_value.key":        "キー '{key}' が重複しています",
		"parse_error":                "解析エラー: {detail}",
		"parse_error.plain":          "解析エラー",
		"truncated":                  "{limit} の上限を超えています",
		"invalid_type.integer":       "整数が必要ですが小数が渡されました",
		"invalid_format.nonpositive": "0 より大きい数値が必要です",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	dict, ok := catalog[t.lang]
	if !ok {
		dict = catalog["en"]
	}
	tmpl, ok := dict[variantKey(code, data)]
	if !ok {
		if tmpl, ok = dict[code]; !ok {
			return code
		}
	}
	return render(tmpl, data)
}

// variantKey picks the most specific catalogue entry for code and data.
func variantKey(code string, data map[string]string) string {
	switch code {
	case "too_short", "too_long":
		k := code + "." + data["type"]
		if data["exact"] == "true" {
			k += ".exact"
		}
		return k
	case "invalid_type":
		if data["expected"] == "integer" && data["received"] == "float" {
			return code + ".integer"
		}
		if data["expected"] == "" {
			return code + ".plain"
		}
	case "invalid_format":
		if data["format"] == "nonpositive" {
			return code + ".nonpositive"
		}
		if data["format"] == "" {
			return code + ".plain"
		}
	case "duplicate_value":
		if data["key"] != "" {
			return code + ".key"
		}
	case "parse_error":
		if data["detail"] == "" {
			return code + ".plain"
		}
	}
	return code
}

func render(tmpl string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(tmpl, "{") {
		return tmpl
	}
	pairs := make([]string, 0, 2*len(data))
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
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
