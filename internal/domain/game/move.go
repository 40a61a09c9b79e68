package game

// @name EngineMoveRequest
type EngineMoveRequest struct {
	Rows  []string `json:"rows"`
	Depth int      `json:"depth"`
}

// @name EngineMoveResponse
type EngineMoveResponse struct {
	Found bool `json:"found"`
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Score int  `json:"score"`
	Depth int  `json:"depth"`
	Nodes int  `json:"nodes"`
}
