package engine

import (
	"strings"
)

// 份量單位詞（只在行首連續出現時剝除）
var unitWords = map[string]struct{}{
	"oz": {}, "ounce": {}, "ounces": {},
	"ml": {}, "cl": {},
	"dash": {}, "dashes": {},
	"barspoon": {}, "barspoons": {},
	"tsp": {}, "tbsp": {}, "teaspoon": {}, "teaspoons": {}, "tablespoon": {}, "tablespoons": {},
	"drop": {}, "drops": {},
	"splash": {}, "splashes": {},
	"part": {}, "parts": {},
	"cup": {}, "cups": {},
	"shot": {}, "shots": {},
	"jigger": {}, "jiggers": {},
	"bottle": {}, "bottles": {}, "can": {}, "cans": {},
	"pinch": {}, "top": {}, "fill": {},
}

// 行首的連接雜字（"Top with Soda Water"、"Splash of Soda"）
var fillerWords = map[string]struct{}{
	"with": {}, "of": {},
}

// unicode 分數也算數量
var fractionRunes = map[rune]struct{}{
	'¼': {}, '½': {}, '¾': {}, '⅓': {}, '⅔': {}, '⅛': {}, '⅜': {}, '⅝': {}, '⅞': {},
}

// Parse 把原始食材行正規化成核心名稱。
// 剝除行首的數量與單位、第一個逗號或括號之後的處理註記，
// CoreName 為小寫比對鍵，Display 保留原始大小寫。
// 全函數：不會失敗；剝除後若為空字串，CoreName 為空，由呼叫端捨棄。
func Parse(raw string) ParsedIngredient {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ParsedIngredient{Raw: raw}
	}

	// 逗號或括號之後視為處理註記（", for garnish"、"(optional)"）
	head := trimmed
	if i := strings.IndexAny(head, ",("); i >= 0 {
		head = head[:i]
	}
	head = strings.TrimSpace(head)
	if head == "" {
		// 整行都是註記，捨棄
		return ParsedIngredient{Raw: raw}
	}

	tokens := strings.Fields(head)
	start := 0
	for start < len(tokens) {
		tok := strings.ToLower(tokens[start])
		if _, filler := fillerWords[tok]; !filler && !isQuantityToken(tok) {
			break
		}
		start++
	}

	display := strings.Join(tokens[start:], " ")
	if display == "" {
		// 每個 token 都像數量或單位，無法判讀時退回整段內容
		display = head
	}

	return ParsedIngredient{
		Raw:      raw,
		CoreName: strings.ToLower(display),
		Display:  display,
	}
}

// isQuantityToken 判斷 token 是否為數量或單位（含 "2oz" 這類連寫形式）
func isQuantityToken(tok string) bool {
	if tok == "" {
		return false
	}
	if _, ok := unitWords[tok]; ok {
		return true
	}

	// 剝掉開頭的數字部分（整數、小數、分數、範圍、unicode 分數）
	rest := tok
	hadDigit := false
	for len(rest) > 0 {
		r := []rune(rest)[0]
		if r >= '0' && r <= '9' {
			hadDigit = true
			rest = rest[1:]
			continue
		}
		if _, ok := fractionRunes[r]; ok {
			hadDigit = true
			rest = rest[len(string(r)):]
			continue
		}
		if hadDigit && (r == '.' || r == '/' || r == '-') {
			rest = rest[1:]
			continue
		}
		break
	}
	if !hadDigit {
		return false
	}
	if rest == "" {
		return true // 純數字
	}

	// 數字後面直接接單位："2oz"、"0.75oz"
	_, ok := unitWords[rest]
	return ok
}
