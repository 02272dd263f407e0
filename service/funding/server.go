package funding

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/QuangTung97/crowdfund/escrow"
	"github.com/QuangTung97/crowdfund/model"
	"github.com/QuangTung97/crowdfund/pkg/otellib"
)

// Server exposes the funding service over HTTP
type Server struct {
	service IService
}

// NewServer ...
func NewServer(service IService) *Server {
	return &Server{service: service}
}

// Register ...
func (s *Server) Register(router gin.IRouter) {
	api := router.Group("/api")

	api.POST("/campaigns", s.createCampaign)
	api.GET("/campaigns", s.listCampaigns)
	api.GET("/campaigns/:id", s.getCampaign)
	api.POST("/campaigns/:id/contributions", s.contribute)
	api.GET("/campaigns/:id/contributions/:contributor", s.getContribution)
	api.GET("/campaigns/:id/backers", s.getBackers)
	api.POST("/campaigns/:id/settlement", s.settle)
	api.GET("/campaigns/:id/events", s.listEvents)
	api.GET("/accounts/:address", s.getAccount)
}

type createCampaignRequest struct {
	Creator         string `json:"creator"`
	Title           string `json:"title"`
	Goal            string `json:"goal"`
	DurationSeconds int64  `json:"durationSeconds"`
}

type contributeRequest struct {
	Contributor string `json:"contributor"`
	Amount      string `json:"amount"`
}

type campaignResponse struct {
	ID            int64     `json:"id"`
	Creator       string    `json:"creator"`
	Title         string    `json:"title"`
	Goal          string    `json:"goal"`
	Deadline      time.Time `json:"deadline"`
	AmountRaised  string    `json:"amountRaised"`
	FundsReleased bool      `json:"fundsReleased"`
	Status        string    `json:"status"`
}

func statusString(status model.CampaignStatus) string {
	switch status {
	case model.CampaignStatusActive:
		return "active"
	case model.CampaignStatusEnded:
		return "ended"
	case model.CampaignStatusSettled:
		return "settled"
	default:
		return "unknown"
	}
}

func newCampaignResponse(campaign model.Campaign) campaignResponse {
	return campaignResponse{
		ID:            campaign.ID,
		Creator:       campaign.Creator,
		Title:         campaign.Title,
		Goal:          campaign.Goal.String(),
		Deadline:      campaign.Deadline,
		AmountRaised:  campaign.AmountRaised.String(),
		FundsReleased: campaign.FundsReleased,
		Status:        statusString(campaign.Status(time.Now())),
	}
}

func errorStatusCode(err error) int {
	switch {
	case errors.Is(err, escrow.ErrCampaignNotFound):
		return http.StatusNotFound

	case errors.Is(err, escrow.ErrInvalidGoal),
		errors.Is(err, escrow.ErrNonIntegerGoal),
		errors.Is(err, escrow.ErrInvalidDuration),
		errors.Is(err, escrow.ErrEmptyCreator),
		errors.Is(err, escrow.ErrEmptyContributor),
		errors.Is(err, escrow.ErrZeroContribution),
		errors.Is(err, escrow.ErrNonIntegerContribution):
		return http.StatusBadRequest

	case errors.Is(err, escrow.ErrCampaignEnded),
		errors.Is(err, escrow.ErrCampaignNotEnded),
		errors.Is(err, escrow.ErrAlreadySettled),
		errors.Is(err, escrow.ErrReentrantCall):
		return http.StatusConflict
	}

	transferErr := &escrow.TransferError{}
	if errors.As(err, &transferErr) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func replyError(c *gin.Context, err error) {
	code := errorStatusCode(err)
	if code >= http.StatusInternalServerError {
		otellib.WrapError(c.Request.Context(), err)
	}
	c.JSON(code, gin.H{
		"error": err.Error(),
	})
}

func campaignIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid campaign id",
		})
		return 0, false
	}
	return id, true
}

func decimalField(c *gin.Context, name string, value string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "invalid " + name,
		})
		return decimal.Decimal{}, false
	}
	return d, true
}

func (s *Server) createCampaign(c *gin.Context) {
	var req createCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goal, ok := decimalField(c, "goal", req.Goal)
	if !ok {
		return
	}

	duration := time.Duration(req.DurationSeconds) * time.Second
	campaignID, err := s.service.CreateCampaign(
		c.Request.Context(), req.Creator, req.Title, goal, duration)
	if err != nil {
		replyError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": campaignID})
}

func (s *Server) listCampaigns(c *gin.Context) {
	campaigns := s.service.ListCampaigns(c.Request.Context())

	result := make([]campaignResponse, 0, len(campaigns))
	for _, campaign := range campaigns {
		result = append(result, newCampaignResponse(campaign))
	}
	c.JSON(http.StatusOK, gin.H{
		"count":     s.service.CampaignCount(c.Request.Context()),
		"campaigns": result,
	})
}

func (s *Server) getCampaign(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	campaign, err := s.service.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCampaignResponse(campaign))
}

func (s *Server) contribute(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	var req contributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, ok := decimalField(c, "amount", req.Amount)
	if !ok {
		return
	}

	err := s.service.Contribute(c.Request.Context(), campaignID, req.Contributor, amount)
	if err != nil {
		replyError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) getContribution(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	amount, err := s.service.GetContribution(
		c.Request.Context(), campaignID, c.Param("contributor"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"amount": amount.String()})
}

func (s *Server) getBackers(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	backers, err := s.service.GetBackers(c.Request.Context(), campaignID)
	if err != nil {
		replyError(c, err)
		return
	}
	if backers == nil {
		backers = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"backers": backers})
}

func (s *Server) settle(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	err := s.service.Settle(c.Request.Context(), campaignID)
	if err != nil {
		replyError(c, err)
		return
	}

	campaign, err := s.service.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, newCampaignResponse(campaign))
}

func (s *Server) listEvents(c *gin.Context) {
	campaignID, ok := campaignIDParam(c)
	if !ok {
		return
	}

	events, err := s.service.ListCampaignEvents(c.Request.Context(), campaignID)
	if err != nil {
		replyError(c, err)
		return
	}

	type eventResponse struct {
		ID        uint64          `json:"id"`
		Type      model.EventType `json:"type"`
		Data      json.RawMessage `json:"data"`
		CreatedAt time.Time       `json:"createdAt"`
	}

	result := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		result = append(result, eventResponse{
			ID:        ev.ID,
			Type:      ev.Type,
			Data:      ev.Data,
			CreatedAt: ev.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"events": result})
}

func (s *Server) getAccount(c *gin.Context) {
	balance, err := s.service.GetBalance(c.Request.Context(), c.Param("address"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"address": c.Param("address"),
		"balance": balance.String(),
	})
}
