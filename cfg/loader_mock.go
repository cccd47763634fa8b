package cfg

type MockLoader struct{}

func NewMockLoader() (*MockLoader, error) {
	return &MockLoader{}, nil
}

func (yl *MockLoader) Load() (*Config, error) {
	return &Config{
		// App
		App: App{
			Name:    "github-explorer",
			Version: "0.0.1",
		},

		// GithubApi
		GithubApi: GithubApi{
			AccessToken:     "",
			ApiUrl:          "https://api.github.com",
			LookupTimeout:   10,
			StarPageTimeout: 20,
			LookupCacheTtl:  300,
			StarCacheTtl:    3600,
			StarPageCap:     10,
		},

		// Ui
		Ui: Ui{
			Port: 8080,
		},
	}, nil
}
