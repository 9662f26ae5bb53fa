// Package postprocess strips artifacts that LLM backends wrap around a
// translation: reasoning blocks, echoed instructions and outer quotes.
package postprocess

import (
	"regexp"
	"strings"
)

type step func(string) string

// steps run in order; each result is trimmed before the next step.
var steps = []step{
	dropReasoning,
	dropPreamble,
	unquote,
}

// Clean applies every cleanup step and returns the trimmed text.
func Clean(text string) string {
	text = strings.TrimSpace(text)
	for _, s := range steps {
		text = strings.TrimSpace(s(text))
	}
	return text
}

// RE2 has no backreferences, so every tag pair is spelled out.
var (
	reasoningBlockRe = regexp.MustCompile(
		`(?is)<thinking>.*?</thinking>|<think>.*?</think>|<reasoning>.*?</reasoning>|<reflection>.*?</reflection>`,
	)
	// an opening tag whose block was cut off before closing
	openReasoningRe = regexp.MustCompile(`(?is)(?:<thinking>|<think>|<reasoning>|<reflection>).*$`)
)

func dropReasoning(text string) string {
	text = reasoningBlockRe.ReplaceAllString(text, "")
	return openReasoningRe.ReplaceAllString(text, "")
}

// preambleRe matches a leading "Here is the translation:"-style phrase, a
// "Translation (fr):" label, or an echoed "[Translated to fr]:" tag. A colon
// is required so real sentences starting with "Here is" survive.
var preambleRe = regexp.MustCompile(
	`(?i)^(?:(?:certainly|sure|of course)[,.!]?\s+)?` +
		`(?:` +
		`here(?:'s| is)(?: the| your)? (?:\w+ )?(?:translation|text)` +
		`|(?:the )?(?:\w+ )?(?:translation|translated text)(?: \([\w-]+\))?` +
		`|\[translated to [\w-]+\]` +
		`)\s*:`,
)

func dropPreamble(text string) string {
	if loc := preambleRe.FindStringIndex(text); loc != nil {
		return text[loc[1]:]
	}
	return text
}

var quotePairs = [][2]rune{
	{'"', '"'},
	{'\'', '\''},
	{'«', '»'},
	{'“', '”'},
	{'‘', '’'},
	{'„', '“'},
}

func unquote(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n < 2 {
		return text
	}
	for _, p := range quotePairs {
		if runes[0] == p[0] && runes[n-1] == p[1] {
			return string(runes[1 : n-1])
		}
	}
	return text
}
