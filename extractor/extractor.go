package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pkg/errors"

	"rank-predictor/models"
)

// ErrNoCandidateInfo means the document yielded zero info rows, i.e. the page
// does not look like an answer key at all.
var ErrNoCandidateInfo = errors.New("no candidate info found in document")

// NotFound is the sentinel stored when a per-question field is missing.
const NotFound = "N/A"

// The portal renders different markup per exam session, so each field has an
// ordered list of shapes; the first shape that yields anything wins. Adding a
// new session layout means adding a selector here, nothing else.
var (
	candidateRowSelectors = []string{
		"table[border='1'] tr",
		"table[style*='border'] tr",
	}
	questionContainerSelectors = []string{
		"div.question-pnl",
		"div.questionPnl",
		"table.questionRowTbl",
	}
	questionTextSelectors = []string{
		"td.questionRowTxt",
		"td.quesTxt",
		"td:contains('Question')",
	}
	rightAnswerSelectors = []string{
		"td.rightAns",
		".rightAns",
		"td.right-answer",
	}
	chosenOptionSelector = "td:contains('Chosen Option'), b:contains('Chosen Option')"
)

var questionIDPattern = regexp.MustCompile(`Question ID :\s*(\d+)`)

// QuestionID pulls the portal's question identifier out of a question text.
// Returns "" when the text carries no identifier.
func QuestionID(text string) string {
	m := questionIDPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Extract parses one rendered answer-key page into an ExamDocument. Individual
// missing fields degrade to sentinels; the only hard failure is a page with no
// candidate info rows at all.
func Extract(html string) (*models.ExamDocument, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse document")
	}

	info := candidateInfo(doc)
	if len(info) == 0 {
		return nil, ErrNoCandidateInfo
	}

	return &models.ExamDocument{
		CandidateInfo: info,
		Questions:     questionRecords(doc),
	}, nil
}

func candidateInfo(doc *goquery.Document) models.CandidateInfo {
	info := models.CandidateInfo{}
	for _, sel := range candidateRowSelectors {
		doc.Find(sel).Each(func(_ int, row *goquery.Selection) {
			cells := row.Find("td")
			if cells.Length() < 2 {
				return
			}
			label := strings.TrimSpace(cells.First().Text())
			value := strings.TrimSpace(cells.Last().Text())
			if label == "" || value == "" {
				return
			}
			info[label] = value
		})
		if len(info) > 0 {
			break
		}
	}
	return info
}

func questionRecords(doc *goquery.Document) []models.QuestionRecord {
	var containers *goquery.Selection
	for _, sel := range questionContainerSelectors {
		if found := doc.Find(sel); found.Length() > 0 {
			containers = found
			break
		}
	}
	if containers == nil {
		return nil
	}

	var records []models.QuestionRecord
	containers.Each(func(_ int, panel *goquery.Selection) {
		text := firstMatch(panel, questionTextSelectors)
		if text == "" {
			// not a question panel after all, skip it
			return
		}
		records = append(records, models.QuestionRecord{
			QuestionText:       text,
			CorrectAnswerLabel: correctAnswer(panel),
			ChosenAnswerLabel:  chosenAnswer(panel),
		})
	})
	return records
}

func firstMatch(panel *goquery.Selection, selectors []string) string {
	for _, sel := range selectors {
		if text := strings.TrimSpace(panel.Find(sel).First().Text()); text != "" {
			return text
		}
	}
	return ""
}

func correctAnswer(panel *goquery.Selection) string {
	if text := firstMatch(panel, rightAnswerSelectors); text != "" {
		return text
	}
	return NotFound
}

func chosenAnswer(panel *goquery.Selection) string {
	marker := panel.Find(chosenOptionSelector).First()
	if marker.Length() == 0 {
		return NotFound
	}
	if text := strings.TrimSpace(marker.Next().Text()); text != "" {
		return text
	}
	return NotFound
}
