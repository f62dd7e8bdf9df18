package core

import (
	"strings"
)

// productiveKeywords covers requests, problems, support, status, urgency and
// business-document vocabulary common in corporate Portuguese email.
var productiveKeywords = []string{
	"solicitação", "solicit", "pedido", "requisição", "requer",
	"problema", "erro", "falha", "bug", "defeito", "issue",
	"suporte", "ajuda", "help", "auxílio", "assistência",
	"dúvida", "questão", "pergunta", "esclarecimento",
	"status", "andamento", "atualização", "progresso", "situação",
	"prazo", "cronograma", "deadline", "entrega", "conclusão",
	"sistema", "aplicação", "software", "plataforma", "versão",
	"instalação", "configuração", "integração", "api", "banco",
	"dados", "relatório", "dashboard", "login", "acesso",
	"documento", "arquivo", "anexo", "contrato", "proposta",
	"orçamento", "fatura", "pagamento", "cobrança", "processo",
	"aprovação", "autorização", "validação", "conferência",
	"urgente", "prioridade", "crítico", "importante", "emergência",
	"imediato", "asap", "o quanto antes", "brevemente",
}

// unproductiveKeywords covers thanks, celebrations, social closings and
// positive-affect adjectives.
var unproductiveKeywords = []string{
	"obrigado", "obrigada", "thanks", "agradecimento", "gratidão",
	"parabéns", "congratulações", "felicitações", "cumprimentos",
	"feliz natal", "ano novo", "happy new year", "boas festas",
	"feriado", "férias", "vacation", "aniversário", "birthday",
	"casamento", "formatura", "aposentadoria", "festa", "evento",
	"cordialmente", "atenciosamente", "respeitosamente",
	"saudações", "abraços", "beijos", "carinho", "love",
	"tchau", "bye", "falou", "até mais", "see you", "weekend",
	"fim de semana", "coffee", "café", "almoço", "lunch",
	"excellent", "excelente", "ótimo", "perfeito", "maravilhoso",
	"fantástico", "incrível", "amazing", "wonderful",
}

// nonActionWords penalize the productive score when present; they signal
// courtesy rather than a request.
var nonActionWords = []string{
	"obrigado", "obrigada", "agradeço", "agradecemos",
	"parabéns", "boas festas", "feliz natal", "feliz ano novo",
}

// ScoreKeywords derives a rule-based category and confidence from keyword
// presence. It expects the lowercased original text: stemmed or normalized
// input would break the multi-word and accented entries in the tables.
func ScoreKeywords(text string) KeywordScore {
	t := strings.ToLower(text)

	productiveScore := 0
	for _, kw := range productiveKeywords {
		if strings.Contains(t, kw) {
			productiveScore++
		}
	}
	unproductiveScore := 0
	for _, kw := range unproductiveKeywords {
		if strings.Contains(t, kw) {
			unproductiveScore++
		}
	}

	// Light penalty for courtesy vocabulary, clamped at zero: negative
	// scores carry no meaning downstream.
	for _, w := range nonActionWords {
		if strings.Contains(t, w) && productiveScore > 0 {
			productiveScore--
		}
	}

	score := KeywordScore{
		ProductiveMatches:   productiveScore,
		UnproductiveMatches: unproductiveScore,
	}

	switch {
	case productiveScore > unproductiveScore:
		score.Category = CategoryProductive
		score.RawScore = productiveScore
		score.Confidence = min(0.6+float64(productiveScore)*0.08, 0.9)
	case unproductiveScore > productiveScore:
		score.Category = CategoryUnproductive
		score.RawScore = unproductiveScore
		score.Confidence = min(0.6+float64(unproductiveScore)*0.08, 0.9)
	default:
		// Tie (including 0-0): a greeting without an action request is
		// unproductive, anything else defaults to productive at low
		// confidence.
		if IsGreetingNoAction(t) {
			score.Category = CategoryUnproductive
			score.Confidence = 0.8
		} else {
			score.Category = CategoryProductive
			score.Confidence = 0.5
		}
	}

	return score
}
