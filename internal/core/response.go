package core

// Reply templates are intentionally static: the suggester never echoes data
// from the incoming email back to the sender.
var intentResponses = map[string]string{
	"status": "Claro! Para conferir o status com precisão, poderia informar o número do chamado/solicitação " +
		"e, se possível, o nome do solicitante e a data de abertura? Assim agilizamos o retorno.",
	"login": "Entendi o problema de acesso. Para avançarmos, envie por favor: usuário/e-mail, sistema/URL, " +
		"data e horário aproximados do erro e, se houver, a mensagem exibida (print ajuda). Vamos verificar.",
	"fatura": "Recebido sobre a fatura. Para tratarmos, confirme o número/competência, valor e vencimento. " +
		"Se houver comprovante ou boleto atualizado, anexe por gentileza.",
	"anexo": "Recebemos o(s) arquivo(s). Vamos validar e retornamos com os próximos passos. " +
		"Se houver alguma ação específica esperada, nos informe.",
	"prazo": "Vamos verificar o cronograma e retornar a previsão. " +
		"Se houver datas críticas, avise para priorizarmos.",
	"api": "Para a integração via API, compartilharemos endpoint, autenticação e exemplos de payload. " +
		"Avise o caso de uso (consulta/envio) e, se necessário, um IP/caller para liberação.",
	"contrato":       "Vamos checar as assinaturas pendentes do contrato e retornamos com a situação e o próximo passo.",
	"reabrir_ticket": "Vamos reabrir o ticket. Pode informar se houve alguma mudança antes da recorrência e anexar logs/prints?",
	"cadastro": "Para atualizar o cadastro, envie os campos a ajustar (endereço, responsáveis, contatos) " +
		"e os documentos, se houver.",
	"auditoria": "Certo, podemos liberar acesso temporário (leitura) para auditoria. " +
		"Informe o e-mail do usuário e o período desejado.",
	"divergencia": "Obrigado pelo alerta de divergência. Compartilhe um exemplo (período, filtro e valor esperado) " +
		"para reproduzirmos e corrigirmos.",
	"pagamento": "Vamos consultar o financeiro sobre a previsão de pagamento e retornamos. " +
		"Se puder, informe número da NF e data de vencimento.",
}

const (
	festiveAck = "Obrigado pela mensagem e pelas felicitações! " +
		"Agradecemos o contato e permanecemos à disposição."
	plainAck = "Obrigado pelo retorno! " +
		"Se precisar de alguma ação específica, é só nos sinalizar."
	genericProductiveReply = "Recebido! Para avançarmos mais rápido, poderia detalhar contexto, objetivo e algum ID (chamado/NF/contrato)?"
)

// SuggestResponse picks a reply template for the final category. Productive
// emails get an intent-specific template (generic fallback when the intent is
// unrecognized); unproductive ones get one of two acknowledgements, chosen by
// whether the text reads as a festive greeting/thanks.
func SuggestResponse(category Category, text string) string {
	if category == CategoryUnproductive {
		if IsGreetingNoAction(text) {
			return festiveAck
		}
		return plainAck
	}
	if reply, ok := intentResponses[DetectIntent(text)]; ok {
		return reply
	}
	return genericProductiveReply
}
