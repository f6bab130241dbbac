package help

const ColdstartYAML = `# page-analyser Quick Start

results:
  words: "Frequency of every visible word (script text skipped, lower-cased, letters only)"
  keywords: "Counts for the words declared in <meta name=\"keywords\">"
  external_links: "Anchors whose href is an absolute URL (javascript: and #fragment links skipped)"

sources:
  url: 'page-analyser analyze --urls "https://example.com,https://example.org"'
  file: "page-analyser analyze --file ./page.html"
  markup: "page-analyser analyze --html '<p>Hello hello world</p>'"
  positional: "page-analyser analyze https://example.com ./page.html"

commands:
  ignore_words: |
    page-analyser analyze --ignore "the, and, of" --urls "https://example.com"

  builtin_stopwords: |
    page-analyser analyze --default-stopwords --urls "https://example.com"

  custom_delimiters: |
    page-analyser analyze --delimiters " ,.;\n\t/" --file ./page.html

  yaml_output: |
    page-analyser analyze --format yaml --urls "https://example.com"

  save_and_review: |
    page-analyser --db ./reports.db analyze --save --urls "https://example.com"
    page-analyser --db ./reports.db history
    page-analyser --db ./reports.db show 1

tokenization:
  - "Entity references like &amp; are removed, not decoded"
  - "Any run of non-ASCII-letters becomes a single separator"
  - "Ignored words only block new entries; a word already counted keeps counting"

config:
  file: "--config config.yaml (workers, timeout, top, delimiters, ignore, default_stopwords, cache_dir, cache_max_age, db, user_agent)"
  env: "PAGE_ANALYSER_* variables, also read from a .env file"
  precedence: "flags > environment > config file > defaults"

error_behavior:
  - "Malformed URLs: fail fast before fetching"
  - "Load failures: reported per source with error_type load_error or timeout"
  - "Exit codes: 0=success, 1=one or more sources failed"
`
