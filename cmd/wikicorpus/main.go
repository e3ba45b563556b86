// Command wikicorpus builds a plain-text corpus from Wikipedia
// articles, to sit alongside the COCA text produced by detok. It pulls
// plaintext extracts from the MediaWiki API, flattens section headings
// to their bare titles and strips characters outside the typable set.
package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/antchfx/xmlquery"
)

// defaultArticles is the stock article list: varied registers and
// topics, long enough for a usable corpus.
var defaultArticles = []string{
	"Book",
	"F. Scott Fitzgerald",
	"Whisky",
	"United States",
	"Bison",
	"Banana",
	"Aurora",
	"Table tennis",
	"Hardness",
	"Fashion",
	"Language",
	"Sponges",
	"Silent film",
	"Cowboy",
	"Computer keyboard",
	"Knitting needle",
	"Genre",
	"Rivalry",
	"Pollution",
	"Frost",
	"Playground slide",
	"Argument",
}

var cli struct {
	Articles []string `short:"a" help:"Wikipedia articles to add to the corpus (defaults to the stock list)."`
	Output   string   `short:"o" default:"wikipedia.txt" help:"Output file."`
	API      string   `default:"https://en.wikipedia.org/w/api.php" help:"MediaWiki API endpoint."`
}

var (
	// reHeading matches "== Title ==" lines in plaintext extracts.
	// The marker runs must be checked separately for equal length;
	// RE2 has no backreferences.
	reHeading = regexp.MustCompile(`^(={2,}) (.*) (={2,})\s*$`)

	// reUntypable matches every character outside the set typable on a
	// standard US keyboard; such characters are dropped.
	reUntypable = regexp.MustCompile("[^A-Za-z0-9`~_=+\\[{\\]}\\\\|;:'\",<.>/?!@#$%^&*() \n-]")
)

// fetchExtract returns the plaintext extract of the named article.
func fetchExtract(client *http.Client, api, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("prop", "extracts")
	q.Set("explaintext", "1")
	q.Set("redirects", "1")
	q.Set("format", "xml")
	q.Set("titles", title)

	req, err := http.NewRequest(http.MethodGet, api+"?"+q.Encode(), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "wikicorpus/1.0 (corpus generation)")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch %q: %s", title, resp.Status)
	}

	doc, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse response for %q: %w", title, err)
	}
	node := xmlquery.FindOne(doc, "//extract")
	if node == nil {
		return "", fmt.Errorf("no extract for %q", title)
	}
	return node.InnerText(), nil
}

// cleanArticle reduces an extract to corpus-quality prose: headings are
// flattened to their titles, everything from "See also" or "Gallery" on
// is dropped, and untypable characters are removed.
func cleanArticle(text string, w *bufio.Writer) error {
	for _, line := range strings.SplitAfter(text, "\n") {
		if m := reHeading.FindStringSubmatch(line); m != nil && len(m[1]) == len(m[3]) {
			line = m[2] + "\n"
			lower := strings.ToLower(line)
			// The sections from "See also" on are usually of poorer
			// quality; stop there.
			if strings.HasPrefix(lower, "see also") || strings.HasPrefix(lower, "gallery") {
				return nil
			}
		}
		if _, err := w.WriteString(reUntypable.ReplaceAllString(line, "")); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("wikicorpus"),
		kong.Description("Wikipedia corpus generator."),
	)

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	articles := cli.Articles
	if len(articles) == 0 {
		articles = defaultArticles
	}

	f, err := os.Create(cli.Output)
	kctx.FatalIfErrorf(err)
	defer f.Close()
	w := bufio.NewWriter(f)

	client := &http.Client{Timeout: 30 * time.Second}
	for _, article := range articles {
		logger.Info("fetching article", "title", article)
		text, err := fetchExtract(client, cli.API, article)
		if err != nil {
			logger.Error("fetch failed", "title", article, "err", err)
			continue
		}
		if err := cleanArticle(text, w); err != nil {
			kctx.FatalIfErrorf(err)
		}
	}
	kctx.FatalIfErrorf(w.Flush())
}
