package request

type CreateMembershipRequest struct {
	Tier          string `json:"tier"`
	PointsBalance int32  `json:"points_balance"`
}

type AwardPointsRequest struct {
	Points *int32 `json:"points" binding:"required"`
}

type RecordSpendingRequest struct {
	AmountCents int64 `json:"amount_cents" binding:"required"`
}
