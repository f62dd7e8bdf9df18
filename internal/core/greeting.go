package core

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// greetingPatterns match festive greetings, congratulations and thanks.
var greetingPatterns = compileAll([]string{
	`\bboas festas\b`,
	`\bfeliz natal\b`,
	`\bfeliz ano novo\b`,
	`\bparab(e|é)ns\b`,
	`\bmuito obrigad[oa]\b`,
	`\bobrigad[oa]\b`,
	`\bagrade(ço|cemos)\b`,
	`\babraços?\b`,
})

// actionTriggers are operational vocabulary that rules out a pure greeting
// even when polite language is present.
var actionTriggers = compileAll([]string{
	`\bstatus\b`, `\berro\b`, `\bacesso\b`, `\blogin\b`, `\bprazo\b`,
	`\bchamado\b`, `\bticket\b`, `\bsolicita(c|ç)(a|ã)o\b`, `\bverifica(r|ção)\b`,
	`\bpoderia(m)?\b`, `\benviar\b`, `\banex(o|ei)\b`, `\bsegue(m)?\b`,
	`\bnf\b`, `\bnota fiscal\b`, `\bfatura\b`, `\bpendente\b`,
	`\batualiza(r|ç[aã]o)\b`, `\bd(ú|u)vida\b`,
})

func compileAll(patterns []string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// IsGreetingNoAction reports whether the text is a pure social
// greeting/thanks with no action request. Questions always imply an action
// request, so a question mark disables the short circuit outright.
func IsGreetingNoAction(text string) bool {
	t := whitespaceRe.ReplaceAllString(strings.ToLower(text), " ")
	if strings.Contains(t, "?") {
		return false
	}
	for _, re := range actionTriggers {
		if re.MatchString(t) {
			return false
		}
	}
	for _, re := range greetingPatterns {
		if re.MatchString(t) {
			return true
		}
	}
	return false
}
