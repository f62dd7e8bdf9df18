package core

import (
	"regexp"
	"strings"
)

// IntentOther is returned when no intent pattern matches.
const IntentOther = "outro"

type intentRule struct {
	name    string
	pattern *regexp.Regexp
}

// intentRules is an ordered table: earlier entries take priority when
// patterns overlap (e.g. "pagamento" also appears under "fatura").
var intentRules = []intentRule{
	{"status", regexp.MustCompile(`\b(status|andamento|situa[cç][aã]o|progresso)\b`)},
	{"login", regexp.MustCompile(`\b(login|acesso|403|senha|bloqueio)\b`)},
	{"fatura", regexp.MustCompile(`\b(fatura|nf|nota fiscal|boleto|pagamento|cobran[çc]a|vencida|vencimento)\b`)},
	{"anexo", regexp.MustCompile(`\b(anexo|segue(m)? em anexo|arquivo(s)?|documento)\b`)},
	{"prazo", regexp.MustCompile(`\b(prazo|deadline|entrega|quando|data prevista|previs[aã]o)\b`)},
	{"api", regexp.MustCompile(`\b(api|endpoint|payload|integra[cç][aã]o)\b`)},
	{"contrato", regexp.MustCompile(`\b(contrato|assinatura(s)?|pendente|validar)\b`)},
	{"reabrir_ticket", regexp.MustCompile(`\b(reabrir|reabertura|voltou a ocorrer|persist(e|iu))\b`)},
	{"cadastro", regexp.MustCompile(`\b(cadastro|atualiza[cç][aã]o cadastral)\b`)},
	{"auditoria", regexp.MustCompile(`\b(auditoria|acesso tempor[aá]rio|perfil leitura)\b`)},
	{"divergencia", regexp.MustCompile(`\b(diverg[eê]ncia|inconsist[eê]ncia|dashboard|relat[oó]rio)\b`)},
	{"pagamento", regexp.MustCompile(`\b(previs[aã]o de pagamento|pagamento|financeiro)\b`)},
}

// DetectIntent returns the first matching intent label for the text, or
// IntentOther when nothing matches.
func DetectIntent(text string) string {
	t := whitespaceRe.ReplaceAllString(strings.ToLower(text), " ")
	for _, rule := range intentRules {
		if rule.pattern.MatchString(t) {
			return rule.name
		}
	}
	return IntentOther
}
