package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type PortfolioResponse struct {
	Message  string   `json:"message"`
	Holdings []string `json:"holdings"`
}

type MarketStatusResponse struct {
	OK     bool   `json:"ok"`
	Market string `json:"market"`
}
