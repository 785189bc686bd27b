package pipeline

// DefaultDomains returns the built-in finance, sports, and technology
// verticals used when no domains config file is present.
func DefaultDomains() []Domain {
	domains := []Domain{
		{
			Name:  "finance",
			Title: "💰 Finance News",
			Params: map[string]string{
				"sector": "Technology",
				"stock":  "Infosys",
			},
			Primary:     "Infosys stock",
			StockSymbol: "INFY.NS",
			FeedURLs: []string{
				"https://www.moneycontrol.com/rss/latestnews.xml",
			},
			QueryPrompt: `Generate 5 short search queries for NewsAPI for financial news.

Rules:
- No boolean operators
- Simple human phrases
- Focus on sector: {sector} and stock: {stock}
- Mandatory to include the word stock
- 2-3 words each
Return ONLY a JSON array`,
			SummaryPrompt: `Summarize EACH of the following finance news articles separately and return as a list of bulletin points.

Context:
- Sector: {sector}
- Stock: {stock}

Rules:
- One point per article
- EXACTLY one bullet per article
- Each bullet must describe a DIFFERENT news event
- NO intro, NO explanation, NO meta text
- NO grouping of articles
- NO phrases like "here is", "this article", "the following"
- Focus on stock movement, earnings, deals, regulation, sector impact
- No inferred relationships
- Mention entity names only if present

Articles:
{articles}`,
		},
		{
			Name:  "sports",
			Title: "🏏 Sports News",
			Params: map[string]string{
				"team":  "Australia",
				"sport": "Cricket",
			},
			Primary: "Australia Cricket",
			FeedURLs: []string{
				"https://www.espncricinfo.com/rss/content/story/feeds/0.xml",
			},
			QueryPrompt: `Generate 5 short search queries for NewsAPI.

Rules:
- Focus only on {team} {sport}
- No boolean operators
- 2-3 words each
Return ONLY a JSON array.`,
			ClassifyPrompt: `Is this article related to {team} {sport}?

Answer ONLY YES or NO.

Title: {title}
Content: {content}`,
			SummaryPrompt: `Summarize EACH sports news item separately and return as a list of bullet points.

Context:
- Team: {team}
- Sport: {sport}

Rules:
- EXACTLY one bullet per article
- Each bullet must describe a DIFFERENT news event
- NO intro, NO explanation, NO meta text
- NO grouping of articles
- NO phrases like "here is", "this article", "the following"
- Focus on: match results, injuries, squad changes, playing XI, tactics

Articles:
{articles}`,
		},
		{
			Name:  "technology",
			Title: "💻 Technology",
			Params: map[string]string{
				"tech": "Artificial Intelligence",
			},
			Primary: "Artificial Intelligence",
			FeedURLs: []string{
				"https://www.wired.com/feed/rss",
			},
			QueryPrompt: `Generate 5 short search queries for recent technology news.

Rules:
- No boolean operators
- Simple human phrases
- Focus only on technology: {tech}
- 2-3 words each
Return ONLY a JSON array of strings.`,
			ClassifyPrompt: `Is this article about {tech}?
YES or NO only.

Title: {title}
Description: {content}`,
			SummaryPrompt: `Summarize the following {tech} news.

Rules:
- EXACTLY one bullet per article
- 3-5 bullets total
- Each bullet must describe a DIFFERENT news event
- No intro or meta text
- Focus on real updates (products, research, regulation, companies)

Articles:
{articles}`,
		},
	}

	for i := range domains {
		domains[i].applyDefaults()
	}
	return domains
}
