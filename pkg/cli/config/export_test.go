package config

func NewTestLogger(level, format, output string) *Logger {
	return &Logger{level: level, format: format, output: output}
}

func NewTestRepository(backend, dsn string) *Repository {
	return &Repository{backend: backend, dsn: dsn}
}

func NewTestLLM(apiKey, defaultModel, premiumModel, visionModel string) *LLM {
	return &LLM{apiKey: apiKey, defaultModel: defaultModel, premiumModel: premiumModel, visionModel: visionModel}
}

func NewTestAuth(jwksURL string) *Auth {
	return &Auth{jwksURL: jwksURL}
}
