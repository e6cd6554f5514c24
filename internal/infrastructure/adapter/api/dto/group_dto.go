package dto

// RoundRequest is one round in a group creation payload. Field names follow
// the wire contract: nEuro and qntRetribuicao are decimal-formatted text,
// nRodada is a text-encoded sequence number.
type RoundRequest struct {
	NEuro          string `json:"nEuro" binding:"required"`
	Retribution    string `json:"retribuicao" binding:"required"`
	RetributionQty string `json:"qntRetribuicao" binding:"required"`
	Number         string `json:"nRodada" binding:"required"`
}

// CreateGroupRequest is the POST /group payload
type CreateGroupRequest struct {
	Name   string         `json:"name"`
	Rounds []RoundRequest `json:"rodada"`
}

// UpdateGroupRequest is the PUT /group/:id payload
type UpdateGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateRoundRequest is the PUT /group/:id/round/:roundId payload
type UpdateRoundRequest struct {
	NEuro          string `json:"nEuro"`
	Retribution    string `json:"retribuicao"`
	RetributionQty string `json:"qntRetribuicao"`
	Number         string `json:"nRodada"`
}

// ApplyNEuroRequest is the PATCH /group/:id/applyNEuro payload
type ApplyNEuroRequest struct {
	UserID     string `json:"userId"`
	NEuro      string `json:"nEuro" binding:"required"`
	TotalUsers int    `json:"totalUsuarios"`
}

// GroupResponse mirrors a group row on the wire
type GroupResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	GameRule          string          `json:"gameRule"`
	GameServerCreated bool            `json:"gameServerCreated"`
	Rounds            []RoundResponse `json:"rodada,omitempty"`
}

// RoundResponse mirrors a round row on the wire
type RoundResponse struct {
	ID             string `json:"id"`
	GroupID        string `json:"groupId"`
	NEuro          string `json:"nEuro"`
	Retribution    string `json:"retribuicao"`
	RetributionQty string `json:"qntRetribuicao"`
	Number         string `json:"nRodada"`
}

// AggregateValuesResponse mirrors the per-group running totals on the wire
type AggregateValuesResponse struct {
	ID           string `json:"id"`
	GroupID      string `json:"groupId"`
	TotalNEuro   string `json:"totalNEuro"`
	TotalUsers   int    `json:"totalUsuarios"`
	RetainedFund string `json:"fundoRetido"`
}

// ApplyNEuroResponse is the PATCH /group/:id/applyNEuro response
type ApplyNEuroResponse struct {
	Values      AggregateValuesResponse `json:"values"`
	UserBalance string                  `json:"userNEuro,omitempty"`
}

// SettlementResponse is the POST /group/:id/next-round response
type SettlementResponse struct {
	GroupID      string `json:"groupId"`
	Share        string `json:"nEuroPerUser"`
	RetainedFund string `json:"fundoRetido"`
	UsersSettled int    `json:"totalUsuarios"`
}

// TransactionRequest is the POST /group/:userId/transaction payload
type TransactionRequest struct {
	RoundID         string `json:"roundId"`
	TransactionType string `json:"transactionType" binding:"required"`
	Amount          string `json:"amount" binding:"required"`
}

// TransactionResponse mirrors a ledger entry on the wire
type TransactionResponse struct {
	ID              string `json:"id"`
	UserID          string `json:"userId"`
	RoundID         string `json:"roundId,omitempty"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
}

// MessageResponse is a plain confirmation body
type MessageResponse struct {
	Message string `json:"message"`
}
