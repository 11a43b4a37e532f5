package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// topicsInReadme extracts the topics listed in readme.md.
func topicsInReadme(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	require.NoError(t, err)
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	require.NoError(t, scanner.Err())
	return topics
}

func TestTopics(t *testing.T) {
	listed := topicsInReadme(t)

	// Every listed topic can be loaded.
	for _, topic := range listed {
		_, err := GetTopic(topic)
		assert.NoError(t, err, "topic %q", topic)
	}

	// Every topic file is listed.
	files, err := filepath.Glob("*.md")
	require.NoError(t, err)
	for _, file := range files {
		base := strings.TrimSuffix(filepath.Base(file), ".md")
		if base == "readme" {
			continue
		}
		assert.Contains(t, listed, base, "topic %q is not listed in readme.md", base)
	}

	all, err := GetAllTopics()
	require.NoError(t, err)
	assert.ElementsMatch(t, listed, all)
}

func TestGetTopic_Unknown(t *testing.T) {
	_, err := GetTopic("nope")
	assert.Error(t, err)
}

func TestGetTopic_All(t *testing.T) {
	content, err := GetTopic("*")
	require.NoError(t, err)
	for _, topic := range topicsInReadme(t) {
		c, err := GetTopic(topic)
		require.NoError(t, err)
		assert.Contains(t, content, c)
	}
}

// TestTopicHeadings checks that every topic starts with a single level one heading.
func TestTopicHeadings(t *testing.T) {
	topics, err := GetAllTopics()
	require.NoError(t, err)

	for _, topic := range topics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			require.NoError(t, err)
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var levels []int
			err = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering {
					levels = append(levels, h.Level)
				}
				return ast.WalkContinue, nil
			})
			require.NoError(t, err)
			require.NotEmpty(t, levels)
			assert.Equal(t, 1, levels[0])
			assert.Equal(t, 1, countLevel(levels, 1), "a single title")
		})
	}
}

func countLevel(levels []int, level int) int {
	n := 0
	for _, l := range levels {
		if l == level {
			n++
		}
	}
	return n
}
