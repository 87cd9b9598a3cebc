package cdpchat

import (
	"fmt"
	"regexp"
	"strings"
)

// OutOfDomainMessage is the fixed refusal returned for questions unrelated
// to any supported platform.
const OutOfDomainMessage = "I'm a CDP support assistant. I can answer how-to questions about " +
	"Segment, mParticle, Lytics, and Zeotap. Try asking something like " +
	"\"How do I set up a new source in Segment?\" or \"How can I create a user profile in mParticle?\""

var (
	numberedStepRe = regexp.MustCompile(`(?s)\d+\.\s+.*?(?:\n|$)`)
	bulletRe       = regexp.MustCompile(`(?m)^[-*]\s+.+$`)
	markdownLinkRe = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	whitespaceRe   = regexp.MustCompile(`\s+`)
	stepPrefixRe   = regexp.MustCompile(`^\d+\.`)
	leadingHowRe   = regexp.MustCompile(`(?i)^\s*(how\s+(do|can|would|should)\s+(i|you|we)\s+|how\s+to\s+|what'?s\s+the\s+best\s+way\s+to\s+)`)
)

// FormatAnswer renders a QueryResult as user-visible answer text.
// It is a pure function of its input; no side effects beyond string
// construction.
func FormatAnswer(result *QueryResult) string {
	switch result.Kind {
	case Matched:
		return formatMatched(result)
	case Ambiguous:
		return formatComparison(result)
	default:
		return OutOfDomainMessage
	}
}

func formatMatched(result *QueryResult) string {
	pr := result.Platforms[0]
	best := pr.Ranked[0]

	var sb strings.Builder
	topic := questionTopic(result.Query, pr.Platform)
	if result.Query.HowTo {
		fmt.Fprintf(&sb, "Here's how to %s in %s:\n\n", topic, pr.Platform.DisplayName())
	} else {
		fmt.Fprintf(&sb, "Here's what I found about %s in %s:\n\n", topic, pr.Platform.DisplayName())
	}

	steps := ExtractSteps(best.Chunk.Content)
	for i, step := range steps {
		step = CleanText(step)
		if stepPrefixRe.MatchString(step) {
			sb.WriteString(step)
		} else {
			fmt.Fprintf(&sb, "%d. %s", i+1, step)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "\nFor more details, see: %s", best.Chunk.SourceURL)
	return sb.String()
}

func formatComparison(result *QueryResult) string {
	names := make([]string, 0, len(result.Platforms))
	for _, pr := range result.Platforms {
		names = append(names, pr.Platform.DisplayName())
	}

	var sb strings.Builder
	if result.Query.Compare {
		fmt.Fprintf(&sb, "Here's a comparison between %s:\n\n", strings.Join(names, " and "))
	} else {
		fmt.Fprintf(&sb, "Your question mentions %s. Here's what I found for each:\n\n", strings.Join(names, " and "))
	}

	for _, pr := range result.Platforms {
		fmt.Fprintf(&sb, "**%s**:\n", pr.Platform.DisplayName())
		if len(pr.Ranked) == 0 {
			sb.WriteString("I couldn't find specific information for this platform.\n\n")
			continue
		}

		best := pr.Ranked[0]
		sentences := SplitSentences(CleanText(best.Chunk.Content))
		if len(sentences) > 3 {
			sentences = sentences[:3]
		}
		for _, s := range sentences {
			fmt.Fprintf(&sb, "- %s\n", s)
		}
		fmt.Fprintf(&sb, "More details: %s\n\n", best.Chunk.SourceURL)
	}

	sb.WriteString("Note: this comparison is based on the available documentation and may not cover every aspect.")
	return sb.String()
}

// questionTopic strips the how-to preamble and the trailing platform
// mention from the raw question so it can be echoed back in the answer
// headline without repeating the platform.
func questionTopic(q *Query, platform Platform) string {
	topic := strings.ToLower(strings.TrimSpace(q.RawText))
	topic = leadingHowRe.ReplaceAllString(topic, "")
	topic = strings.TrimRight(topic, "?!. ")

	name := strings.ToLower(string(platform))
	for _, sep := range []string{" in ", " on ", " with ", " using ", " for "} {
		topic = strings.TrimSuffix(topic, sep+name)
		topic = strings.TrimSuffix(topic, sep+name+"'s")
	}

	if topic == "" {
		topic = "do this"
	}
	return topic
}

// ExtractSteps pulls numbered steps or bullet points out of chunk text.
// Falls back to the first five sentences when the text has no list
// structure.
func ExtractSteps(text string) []string {
	if steps := matchAllTrimmed(numberedStepRe, text); len(steps) > 0 {
		return steps
	}
	if bullets := matchAllTrimmed(bulletRe, text); len(bullets) > 0 {
		out := make([]string, 0, len(bullets))
		for _, b := range bullets {
			out = append(out, strings.TrimLeft(b, "-* "))
		}
		return out
	}

	sentences := SplitSentences(text)
	if len(sentences) > 5 {
		sentences = sentences[:5]
	}
	return sentences
}

func matchAllTrimmed(re *regexp.Regexp, text string) []string {
	matches := re.FindAllString(text, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		m = strings.TrimSpace(m)
		if m != "" {
			out = append(out, m)
		}
	}
	return out
}

// CleanText collapses whitespace and strips markdown link syntax while
// keeping the link text.
func CleanText(text string) string {
	text = markdownLinkRe.ReplaceAllString(text, "$1")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// SplitSentences splits text on sentence-ending punctuation.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			// Sentence boundary only when followed by whitespace or EOF.
			if i == len(runes)-1 || runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t' {
				if s := strings.TrimSpace(current.String()); s != "" {
					sentences = append(sentences, s)
				}
				current.Reset()
			}
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}
