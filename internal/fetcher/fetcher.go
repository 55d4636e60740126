package fetcher

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rittik987/alex.ai/pkg/model"
)

// ImportResult is a question set scraped from a public page of
// interview questions.
type ImportResult struct {
	Title     string
	URL       string
	Questions []model.Question
}

const maxImportedQuestions = 25

// ImportQuestions fetches a page and extracts interview-question-like
// lines from its content, classified as behavioral or coding.
func ImportQuestions(rawURL, userAgent string) (*ImportResult, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported url scheme: %s", u.Scheme)
	}

	req, err := http.NewRequest("GET", rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("fetch page: status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	title := strings.TrimSpace(doc.Find("h1").First().Text())

	doc.Find("script, style, nav, header, footer, .ad, .advertisement").Remove()

	seen := make(map[string]bool)
	var questions []model.Question
	doc.Find("li, p, h2, h3").Each(func(_ int, s *goquery.Selection) {
		if len(questions) >= maxImportedQuestions {
			return
		}
		text := cleanText(s.Text())
		if !looksLikeQuestion(text) || seen[text] {
			return
		}
		seen[text] = true
		questions = append(questions, model.Question{
			ID:   len(questions) + 1,
			Type: classifyQuestion(text),
			Text: text,
		})
	})

	if len(questions) == 0 {
		return nil, fmt.Errorf("no interview questions found at %s", rawURL)
	}

	return &ImportResult{Title: title, URL: rawURL, Questions: questions}, nil
}

var questionOpeners = []string{
	"tell me", "describe", "explain", "how ", "what ", "why ", "when ",
	"implement", "design", "write ", "given ", "can you", "walk me",
	"have you", "would you",
}

func looksLikeQuestion(text string) bool {
	if len(text) < 15 || len(text) > 500 {
		return false
	}
	lower := strings.ToLower(text)
	if strings.HasSuffix(text, "?") {
		return true
	}
	for _, opener := range questionOpeners {
		if strings.HasPrefix(lower, opener) {
			return true
		}
	}
	return false
}

var codingMarkers = []string{
	"array", "string", "linked list", "tree", "graph", "algorithm",
	"implement", "complexity", "integer", "function", "write a program",
	"write code", "sort", "substring", "hash",
}

func classifyQuestion(text string) model.QuestionType {
	lower := strings.ToLower(text)
	for _, m := range codingMarkers {
		if strings.Contains(lower, m) {
			return model.QuestionCoding
		}
	}
	return model.QuestionBehavioral
}

// cleanText collapses whitespace so scraped fragments read as single
// lines.
func cleanText(text string) string {
	re := regexp.MustCompile(`\s+`)
	return strings.TrimSpace(re.ReplaceAllString(text, " "))
}
