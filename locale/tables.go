// Copyright 2026 the resgen contributors
// SPDX-License-Identifier: BSD-3-Clause

package locale

// langCharsetPairs maps a normalized language code to the combined
// locale-id/codepage pair used in VERSIONINFO translation blocks.
// The codepage halves follow the Windows defaults: 04e4 is cp1252,
// 04e2 cp1250, 04e3 cp1251, and the CJK pages are 03a4 (cp932),
// 03a8 (cp936), 03b5 (cp949) and 03b6 (cp950).
var langCharsetPairs = map[string]string{
	"ar":    "040104e8",
	"bg":    "040204e3",
	"ca":    "040304e4",
	"cs":    "040504e2",
	"da":    "040604e4",
	"de":    "040704e4",
	"el":    "040804e5",
	"en":    "040904e4",
	"en-GB": "080904e4",
	"es":    "0c0a04e4",
	"et":    "042504e9",
	"fi":    "040b04e4",
	"fil":   "046404e4",
	"fr":    "040c04e4",
	"he":    "040d04e7",
	"hi":    "043904b0",
	"hr":    "041a04e2",
	"hu":    "040e04e2",
	"id":    "042104e4",
	"it":    "041004e4",
	"ja":    "041103a4",
	"ko":    "041203b5",
	"lt":    "042704e9",
	"lv":    "042604e9",
	"nb":    "041404e4",
	"nl":    "041304e4",
	"no":    "041404e4",
	"pl":    "041504e2",
	"pt-BR": "041604e4",
	"pt-PT": "081604e4",
	"ro":    "041804e2",
	"ru":    "041904e3",
	"sk":    "041b04e2",
	"sl":    "042404e2",
	"sr":    "081a04e2",
	"sv":    "041d04e4",
	"th":    "041e036a",
	"tr":    "041f04e6",
	"uk":    "042204e3",
	"vi":    "042a04ea",
	"zh-CN": "080403a8",
	"zh-TW": "040403b6",
}

// langDirectivePairs maps a normalized language code to the argument
// pair of the LANGUAGE statement.
var langDirectivePairs = map[string]string{
	"ar":    "LANG_ARABIC, SUBLANG_ARABIC_SAUDI_ARABIA",
	"bg":    "LANG_BULGARIAN, SUBLANG_DEFAULT",
	"ca":    "LANG_CATALAN, SUBLANG_DEFAULT",
	"cs":    "LANG_CZECH, SUBLANG_DEFAULT",
	"da":    "LANG_DANISH, SUBLANG_DEFAULT",
	"de":    "LANG_GERMAN, SUBLANG_GERMAN",
	"el":    "LANG_GREEK, SUBLANG_DEFAULT",
	"en":    "LANG_ENGLISH, SUBLANG_ENGLISH_US",
	"en-GB": "LANG_ENGLISH, SUBLANG_ENGLISH_UK",
	"es":    "LANG_SPANISH, SUBLANG_SPANISH_MODERN",
	"et":    "LANG_ESTONIAN, SUBLANG_DEFAULT",
	"fi":    "LANG_FINNISH, SUBLANG_DEFAULT",
	"fil":   "LANG_FILIPINO, SUBLANG_DEFAULT",
	"fr":    "LANG_FRENCH, SUBLANG_FRENCH",
	"he":    "LANG_HEBREW, SUBLANG_DEFAULT",
	"hi":    "LANG_HINDI, SUBLANG_DEFAULT",
	"hr":    "LANG_CROATIAN, SUBLANG_DEFAULT",
	"hu":    "LANG_HUNGARIAN, SUBLANG_DEFAULT",
	"id":    "LANG_INDONESIAN, SUBLANG_DEFAULT",
	"it":    "LANG_ITALIAN, SUBLANG_ITALIAN",
	"ja":    "LANG_JAPANESE, SUBLANG_DEFAULT",
	"ko":    "LANG_KOREAN, SUBLANG_KOREAN",
	"lt":    "LANG_LITHUANIAN, SUBLANG_LITHUANIAN",
	"lv":    "LANG_LATVIAN, SUBLANG_DEFAULT",
	"nb":    "LANG_NORWEGIAN, SUBLANG_NORWEGIAN_BOKMAL",
	"nl":    "LANG_DUTCH, SUBLANG_DUTCH",
	"no":    "LANG_NORWEGIAN, SUBLANG_NORWEGIAN_BOKMAL",
	"pl":    "LANG_POLISH, SUBLANG_DEFAULT",
	"pt-BR": "LANG_PORTUGUESE, SUBLANG_PORTUGUESE_BRAZILIAN",
	"pt-PT": "LANG_PORTUGUESE, SUBLANG_PORTUGUESE",
	"ro":    "LANG_ROMANIAN, SUBLANG_DEFAULT",
	"ru":    "LANG_RUSSIAN, SUBLANG_DEFAULT",
	"sk":    "LANG_SLOVAK, SUBLANG_DEFAULT",
	"sl":    "LANG_SLOVENIAN, SUBLANG_DEFAULT",
	"sr":    "LANG_SERBIAN, SUBLANG_SERBIAN_LATIN",
	"sv":    "LANG_SWEDISH, SUBLANG_SWEDISH",
	"th":    "LANG_THAI, SUBLANG_DEFAULT",
	"tr":    "LANG_TURKISH, SUBLANG_DEFAULT",
	"uk":    "LANG_UKRAINIAN, SUBLANG_DEFAULT",
	"vi":    "LANG_VIETNAMESE, SUBLANG_DEFAULT",
	"zh-CN": "LANG_CHINESE, SUBLANG_CHINESE_SIMPLIFIED",
	"zh-TW": "LANG_CHINESE, SUBLANG_CHINESE_TRADITIONAL",
}
