package analytics

import (
	"math"
	"mindcare/internal/models"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	negationScalar      = -0.74
	butBeforeWeight     = 0.5
	butAfterWeight      = 1.5
	exclamationBoost    = 0.292
	maxExclamations     = 4
	normalizationAlpha  = 15.0
	minKeywordRuneCount = 3
)

var (
	sentimentTokenRe = regexp.MustCompile(`[\p{L}\p{N}']+`)
	keywordTokenRe   = regexp.MustCompile(`[\p{L}\p{N}]+`)
	apostrophes      = strings.NewReplacer("’", "'", "‘", "'", "`", "'")
)

// TextAnalyzer is a self-contained lexical scorer. It holds only read-only
// tables and is safe for concurrent use.
type TextAnalyzer struct {
	valence   map[string]float64
	boosters  map[string]float64
	negations map[string]struct{}
	stopWords map[string]struct{}
}

func NewTextAnalyzer() *TextAnalyzer {
	return &TextAnalyzer{
		valence:   valence,
		boosters:  boosters,
		negations: negations,
		stopWords: englishStopWords,
	}
}

func sentimentTokens(text string) []string {
	raw := sentimentTokenRe.FindAllString(apostrophes.Replace(strings.ToLower(text)), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		tok = strings.Trim(tok, "'")
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// Sentiment scores text with a VADER-style heuristic. Identical input
// always yields the identical result.
func (a *TextAnalyzer) Sentiment(text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return models.SentimentResult{}
	}
	tokens := sentimentTokens(text)
	if len(tokens) == 0 {
		return models.SentimentResult{}
	}

	scores := make([]float64, len(tokens))
	for i, tok := range tokens {
		v, ok := a.valence[tok]
		if !ok {
			continue
		}
		for back, scale := range []float64{1, 0.95, 0.9} {
			j := i - back - 1
			if j < 0 {
				break
			}
			if b, ok := a.boosters[tokens[j]]; ok {
				if v < 0 {
					b = -b
				}
				v += b * scale
			}
		}
		for j := max(0, i-3); j < i; j++ {
			if _, ok := a.negations[tokens[j]]; ok {
				v *= negationScalar
				break
			}
		}
		scores[i] = v
	}

	for i, tok := range tokens {
		if tok != "but" {
			continue
		}
		for j := range scores {
			switch {
			case j < i:
				scores[j] *= butBeforeWeight
			case j > i:
				scores[j] *= butAfterWeight
			}
		}
		break
	}

	var sum, posSum, negSum float64
	var neutral int
	for _, s := range scores {
		sum += s
		switch {
		case s > 0:
			posSum += s + 1
		case s < 0:
			negSum += s - 1
		default:
			neutral++
		}
	}

	if sum != 0 {
		bangs := float64(min(strings.Count(text, "!"), maxExclamations)) * exclamationBoost
		if sum > 0 {
			sum += bangs
			posSum += bangs
		} else {
			sum -= bangs
			negSum -= bangs
		}
	}

	compound := sum / math.Sqrt(sum*sum+normalizationAlpha)
	compound = math.Max(-1, math.Min(1, compound))

	total := posSum + math.Abs(negSum) + float64(neutral)
	return models.SentimentResult{
		Compound: round(compound, 4),
		Positive: round(posSum/total, 3),
		Neutral:  round(float64(neutral)/total, 3),
		Negative: round(math.Abs(negSum)/total, 3),
	}
}

// Keywords returns up to topN content words ordered by frequency, ties
// broken by first occurrence.
func (a *TextAnalyzer) Keywords(text string, topN int) []string {
	if topN <= 0 || strings.TrimSpace(text) == "" {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	for _, tok := range keywordTokenRe.FindAllString(strings.ToLower(text), -1) {
		if utf8.RuneCountInString(tok) < minKeywordRuneCount {
			continue
		}
		if _, stop := a.stopWords[tok]; stop {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	ranked := rankByCount(order, counts)
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
