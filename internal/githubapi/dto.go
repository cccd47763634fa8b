// Gói githubapi cung cấp các DTO cho phản hồi từ GitHub API.

package githubapi

type Owner struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarUrl string `json:"avatar_url"`
}

type RepoResponse struct {
	Id              int64  `json:"id"`
	Name            string `json:"name"`
	FullName        string `json:"full_name"`
	Owner           Owner  `json:"owner"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	HtmlUrl         string `json:"html_url"`
	StargazersCount int64  `json:"stargazers_count"`
	ForksCount      int64  `json:"forks_count"`
	WatchersCount   int64  `json:"watchers_count"`
	OpenIssuesCount int64  `json:"open_issues_count"`
	UpdatedAt       string `json:"updated_at"`
}

// Mapping response of the search API
type SearchResponse struct {
	TotalCount        int            `json:"total_count"`
	IncompleteResults bool           `json:"incomplete_results"`
	Items             []RepoResponse `json:"items"`
}

type UserResponse struct {
	Login       string `json:"login"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Blog        string `json:"blog"`
	AvatarUrl   string `json:"avatar_url"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
}

// StargazerResponse is one element of the star+json media type: the starring
// user plus the instant the star was given.
type StargazerResponse struct {
	StarredAt string `json:"starred_at"`
	User      *Owner `json:"user"`
}

// StargazerPage is the tagged decode result for one stargazer page. End is
// set for an empty page and for a body that is not a JSON array; the two are
// both graceful stops for the collector.
type StargazerPage struct {
	Items []StargazerResponse
	End   bool
}
