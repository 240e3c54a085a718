package evaluation

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/zmckinney22/CS410-Group-Project/internal/sentiment"
)

// LoadLabeledComments reads manually labeled comments plus the posts file
// that maps post ids to subreddits. Both files may be comma- or
// tab-separated; the delimiter is sniffed from the header line. Rows with
// empty text or an unknown label are skipped.
func LoadLabeledComments(commentsPath, postsPath string) ([]Example, error) {
	postToSubreddit := make(map[string]string)
	if postsPath != "" {
		rows, err := readDelimited(postsPath)
		if err != nil {
			return nil, fmt.Errorf("evaluation: read posts file: %w", err)
		}
		for _, row := range rows {
			postToSubreddit[row["post_id"]] = row["subreddit"]
		}
	}

	rows, err := readDelimited(commentsPath)
	if err != nil {
		return nil, fmt.Errorf("evaluation: read comments file: %w", err)
	}

	var examples []Example
	for _, row := range rows {
		text := strings.TrimSpace(row["text"])
		label, err := sentiment.ParseLabel(strings.ToLower(strings.TrimSpace(row["manual_label"])))
		if text == "" || err != nil {
			continue
		}
		examples = append(examples, Example{
			CommentID: row["comment_id"],
			Text:      text,
			Label:     label,
			Community: postToSubreddit[row["post_id"]],
			PostID:    row["post_id"],
		})
	}
	return examples, nil
}

// LoadSST2 reads a Stanford Sentiment Treebank TSV file of
// "text<TAB>label" lines where label is 0 (negative) or 1 (positive).
func LoadSST2(path string) ([]Example, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var examples []Example
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), "\t", 2)
		if len(parts) != 2 {
			continue
		}
		label := sentiment.LabelNegative
		if strings.TrimSpace(parts[1]) == "1" {
			label = sentiment.LabelPositive
		}
		examples = append(examples, Example{Text: parts[0], Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return examples, nil
}

// readDelimited parses a headered CSV/TSV file into one map per row.
func readDelimited(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// Sniff the delimiter from the first line.
	br := bufio.NewReader(f)
	firstLine, err := br.ReadString('\n')
	if err != nil && firstLine == "" {
		return nil, err
	}
	delimiter := ','
	if strings.Contains(firstLine, "\t") {
		delimiter = '\t'
	}

	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}
	reader := csv.NewReader(f)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 1 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[strings.TrimSpace(col)] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
