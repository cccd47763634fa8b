package cfg

type (
	App struct {
		Name    string
		Version string
	}

	GithubApi struct {
		AccessToken string
		ApiUrl      string
		// Timeouts in seconds. Lookup covers single-resource requests,
		// StarPage covers the paginated stargazer requests.
		LookupTimeout   int
		StarPageTimeout int
		// Cache TTLs in seconds.
		LookupCacheTtl int
		StarCacheTtl   int
		// Hard cap on stargazer pages per collection.
		StarPageCap int
	}

	Ui struct {
		Port int
	}
)

type Config struct {
	App       App
	GithubApi GithubApi
	Ui        Ui
}
