package dto

// UserSettingsResponse representa as configurações fixas do usuário offline
type UserSettingsResponse struct {
	Params                 map[string]interface{} `json:"params"`
	TemporaryChatByDefault bool                   `json:"temporaryChatByDefault"`
}

// LocationResponse representa a localização fixa do usuário offline
type LocationResponse struct {
	City    string `json:"city"`
	Country string `json:"country"`
}
