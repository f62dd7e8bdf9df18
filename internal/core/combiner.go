package core

// CombineSignals fuses the keyword score with the optional sentiment signal
// into the final category and confidence. Priority order:
//
//  1. A strong lexical signal (raw score >= 3) wins outright, regardless of
//     what the sentiment model says.
//  2. A confident, non-abstaining sentiment signal (> 0.7) either boosts an
//     agreeing keyword result or, on disagreement, the higher-confidence
//     source wins.
//  3. Otherwise the keyword result stands unchanged.
func CombineSignals(kw KeywordScore, sentiment *SentimentSignal) (Category, float64) {
	if kw.RawScore >= 3 {
		return kw.Category, min(0.85+float64(kw.RawScore)*0.03, 0.95)
	}

	if !sentiment.Abstained() && sentiment.Confidence > 0.7 {
		if sentiment.Category == kw.Category {
			return kw.Category, min(0.8+sentiment.Confidence*0.15, 0.95)
		}
		if kw.Confidence > sentiment.Confidence {
			return kw.Category, kw.Confidence
		}
		return sentiment.Category, sentiment.Confidence
	}

	return kw.Category, kw.Confidence
}
