package code

import (
	"errors"
	"slices"
)

// lang holds the English and Chinese text of a message
// lang 保存消息的英文与中文文本
type lang struct {
	en    string
	zh_cn string
}

const FallbackLang = "en"

var lng = FallbackLang

// GetMessage returns the text for the global language, falling back to English
// GetMessage 按全局语言返回消息，缺失时回退到英文
func (l lang) GetMessage() string {
	return l.In(lng)
}

// In returns the text for the given language
// In 返回指定语言的消息
func (l lang) In(language string) string {
	switch language {
	case "zh", "zh_cn", "zh-CN":
		if l.zh_cn != "" {
			return l.zh_cn
		}
	}
	return l.en
}

// GetSupportedLanguages 返回支持的语言
func GetSupportedLanguages() []string {
	return []string{"en", "zh_cn"}
}

// SetGlobalDefaultLang sets the global language, unknown values reset it to English
// SetGlobalDefaultLang 设置全局语言，未知值会重置为英文
func SetGlobalDefaultLang(language string) error {
	if slices.Contains(GetSupportedLanguages(), language) {
		lng = language
		return nil
	}
	lng = FallbackLang
	return errors.New("unsupported language type, set defaulting to " + FallbackLang)
}

func GetGlobalDefaultLang() string {
	return lng
}
