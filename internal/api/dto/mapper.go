package dto

import (
	"github.com/capitalizeai/scoring-api/internal/domain"
)

// ToScoringRequest converts a CreateScoringRequest DTO to a ScoringRequest
// domain model. Empty subject fields become NULLs, not empty strings.
func (r *CreateScoringRequest) ToScoringRequest() *domain.ScoringRequest {
	req := &domain.ScoringRequest{
		InputData:   r.InputData,
		DataSources: []string{"momo", "airtime"},
		Status:      domain.ScoringStatusPending,
		Priority:    domain.PriorityNormal,
	}
	if r.SubjectName != "" {
		req.SubjectName = &r.SubjectName
	}
	if r.SubjectPhone != "" {
		req.SubjectPhone = &r.SubjectPhone
	}
	if r.SubjectIDNumber != "" {
		req.SubjectIDNumber = &r.SubjectIDNumber
	}
	if r.Priority != "" {
		req.Priority = domain.ScoringPriority(r.Priority)
	}
	return req
}

// ToTransaction converts one ingested record to a Transaction domain model
func (r *TransactionRecord) ToTransaction(orgID string) domain.Transaction {
	tx := domain.Transaction{
		OrgID:        orgID,
		SubjectPhone: r.SubjectPhone,
		Amount:       r.Amount,
		Currency:     "XAF",
		Channel:      domain.ChannelMomo,
		Timestamp:    r.Timestamp,
		Metadata:     r.Metadata,
	}
	if r.Currency != "" {
		tx.Currency = r.Currency
	}
	if r.Channel != "" {
		tx.Channel = domain.Channel(r.Channel)
	}
	if r.TransactionType != "" {
		t := domain.TransactionType(r.TransactionType)
		tx.TransactionType = &t
	}
	if r.CounterpartyPhone != "" {
		tx.CounterpartyPhone = &r.CounterpartyPhone
	}
	if r.CounterpartyName != "" {
		tx.CounterpartyName = &r.CounterpartyName
	}
	if r.Reference != "" {
		tx.Reference = &r.Reference
	}
	if r.Location != "" {
		tx.Location = &r.Location
	}
	return tx
}

// FromOrganization converts an Organization domain model to its response DTO
func FromOrganization(org *domain.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Slug:        org.Slug,
		Type:        string(org.Type),
		Plan:        string(org.Plan),
		Country:     org.Country,
		Address:     org.Address,
		Website:     org.Website,
		LogoURL:     org.LogoURL,
		Settings:    org.Settings,
		Quotas:      org.Quotas,
		Usage:       org.UsageCurrent,
		Status:      string(org.Status),
		TrialEndsAt: org.TrialEndsAt,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

// FromOrgMember converts an OrgMember domain model to its response DTO,
// flattening the preloaded profile when present
func FromOrgMember(member *domain.OrgMember) *OrgMemberResponse {
	resp := &OrgMemberResponse{
		ID:       member.ID,
		UserID:   member.UserID,
		OrgID:    member.OrgID,
		Role:     string(member.Role),
		JoinedAt: member.JoinedAt,
	}
	if member.Profile != nil {
		resp.Email = member.Profile.Email
		resp.FullName = member.Profile.FullName
	}
	return resp
}

func FromOrgMembers(members []domain.OrgMember) []OrgMemberResponse {
	responses := make([]OrgMemberResponse, len(members))
	for i := range members {
		responses[i] = *FromOrgMember(&members[i])
	}
	return responses
}

// FromProfile converts a Profile domain model to its response DTO
func FromProfile(profile *domain.Profile) *ProfileResponse {
	return &ProfileResponse{
		ID:                profile.ID,
		Email:             profile.Email,
		FullName:          profile.FullName,
		AvatarURL:         profile.AvatarURL,
		Phone:             profile.Phone,
		CompanyName:       profile.CompanyName,
		JobTitle:          profile.JobTitle,
		Country:           profile.Country,
		PreferredLanguage: profile.PreferredLanguage,
		Onboarded:         profile.Onboarded,
		CreatedAt:         profile.CreatedAt,
		UpdatedAt:         profile.UpdatedAt,
	}
}

// FromAPIKey converts an APIKey domain model to its response DTO. The
// stored hash is never mapped.
func FromAPIKey(key *domain.APIKey) *APIKeyResponse {
	return &APIKeyResponse{
		ID:                 key.ID,
		OrgID:              key.OrgID,
		Name:               key.Name,
		KeyPrefix:          key.KeyPrefix,
		Scopes:             key.Scopes,
		RateLimitPerMinute: key.RateLimitPerMinute,
		LastUsedAt:         key.LastUsedAt,
		UsageCount:         key.UsageCount,
		IsActive:           key.IsActive,
		ExpiresAt:          key.ExpiresAt,
		CreatedAt:          key.CreatedAt,
	}
}

func FromAPIKeys(keys []domain.APIKey) []APIKeyResponse {
	responses := make([]APIKeyResponse, len(keys))
	for i := range keys {
		responses[i] = *FromAPIKey(&keys[i])
	}
	return responses
}

// FromScore converts a Score domain model to its response DTO
func FromScore(score *domain.Score) *ScoreResponse {
	return &ScoreResponse{
		ID:                      score.ID,
		RequestID:               score.RequestID,
		ScoreValue:              score.ScoreValue,
		ProbabilityOfDefault:    score.ProbabilityOfDefault,
		RiskCategory:            string(score.RiskCategory),
		MaxRecommendedAmount:    score.MaxRecommendedAmount,
		RecommendedTermMonths:   score.RecommendedTermMonths,
		RecommendedInterestRate: score.RecommendedInterestRate,
		Components:              score.Components,
		ExplanationText:         score.ExplanationText,
		ModelVersion:            score.ModelVersion,
		Confidence:              score.Confidence,
		ValidUntil:              score.ValidUntil,
		CreatedAt:               score.CreatedAt,
	}
}

// FromScoringRequest converts a ScoringRequest domain model to its
// response DTO, embedding the score when it was preloaded
func FromScoringRequest(req *domain.ScoringRequest) *ScoringRequestResponse {
	resp := &ScoringRequestResponse{
		ID:               req.ID,
		OrgID:            req.OrgID,
		RequestedBy:      req.RequestedBy,
		SubjectName:      req.SubjectName,
		SubjectPhone:     req.SubjectPhone,
		SubjectIDNumber:  req.SubjectIDNumber,
		DataSources:      req.DataSources,
		Status:           string(req.Status),
		Priority:         string(req.Priority),
		ErrorMessage:     req.ErrorMessage,
		ProcessingTimeMs: req.ProcessingTimeMs,
		CreatedAt:        req.CreatedAt,
	}
	if req.Score != nil {
		resp.Score = FromScore(req.Score)
	}
	return resp
}

func FromScoringRequests(reqs []domain.ScoringRequest) []ScoringRequestResponse {
	responses := make([]ScoringRequestResponse, len(reqs))
	for i := range reqs {
		responses[i] = *FromScoringRequest(&reqs[i])
	}
	return responses
}
