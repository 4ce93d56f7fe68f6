package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/okruta/routelog/internal/core/domain"
	"github.com/okruta/routelog/internal/core/usecases"
	"github.com/okruta/routelog/internal/pkg/period"
)

func conversationID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// SummaryResponse is the mileage total for one conversation and window.
type SummaryResponse struct {
	ConversationID int64   `json:"conversation_id"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	TotalKm        float64 `json:"total_km"`
}

// ConversationSummaryHandler returns the distance total for a named period
// (?period=last_week) or an explicit window (?from=2025-08-01&to=2025-08-15).
func ConversationSummaryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := conversationID(c)
		if err != nil {
			return errBadRequest(c, "conversation id must be an integer")
		}

		name := c.Query("period")
		from := c.Query("from")
		to := c.Query("to")

		var rng period.Range
		var total float64
		switch {
		case name != "":
			rng, total, err = deps.Reports.TotalForPeriod(c.Context(), id, domain.PeriodName(name))
			if errors.Is(err, usecases.ErrUnknownPeriod) {
				return errBadRequest(c, "unknown period: "+name)
			}
			if err != nil {
				return errInternal(c, err.Error())
			}
		case from != "" && to != "":
			rng, err = period.Manual(from, to)
			if err != nil {
				return errBadRequest(c, err.Error())
			}
			total, err = deps.Reports.TotalForRange(c.Context(), id, rng)
			if err != nil {
				return errInternal(c, err.Error())
			}
		default:
			return errBadRequest(c, "period or from/to query parameters are required")
		}

		c.Set("Cache-Control", "public, max-age=60")
		return c.JSON(SummaryResponse{
			ConversationID: id,
			From:           rng.Start.Format(period.DateLayout),
			To:             rng.End.Format(period.DateLayout),
			TotalKm:        total,
		})
	}
}

// ConversationRecordsHandler lists persisted route records, newest first.
func ConversationRecordsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := conversationID(c)
		if err != nil {
			return errBadRequest(c, "conversation id must be an integer")
		}

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 50)

		records, total, err := deps.Reports.ListRecords(c.Context(), id, offset, limit)
		if err != nil {
			return errInternal(c, err.Error())
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: records, Pagination: pg})
	}
}

// GetBasePointHandler returns the effective start point of a conversation.
func GetBasePointHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := conversationID(c)
		if err != nil {
			return errBadRequest(c, "conversation id must be an integer")
		}

		return c.JSON(fiber.Map{
			"conversation_id": id,
			"base_point":      deps.Settings.BasePoint(c.Context(), id),
		})
	}
}

// SetBasePointHandler overrides the start point of a conversation.
func SetBasePointHandler(deps *Dependencies) fiber.Handler {
	type request struct {
		BasePoint string `json:"base_point"`
	}

	return func(c *fiber.Ctx) error {
		id, err := conversationID(c)
		if err != nil {
			return errBadRequest(c, "conversation id must be an integer")
		}

		var req request
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}
		req.BasePoint = strings.TrimSpace(req.BasePoint)
		if req.BasePoint == "" {
			return errBadRequest(c, "base_point is required")
		}

		if err := deps.Settings.SetBasePoint(c.Context(), id, req.BasePoint); err != nil {
			return errInternal(c, err.Error())
		}

		return c.JSON(fiber.Map{
			"conversation_id": id,
			"base_point":      req.BasePoint,
		})
	}
}

// ServiceStats holds row counts from the mileage tables.
type ServiceStats struct {
	Conversations int     `json:"conversations"`
	Records       int     `json:"records"`
	TotalKm       float64 `json:"total_km"`
	LastRecordAt  string  `json:"last_record_at,omitempty"`
}

// StatsHandler returns aggregate counts across all conversations.
func StatsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if deps.DB == nil {
			return errInternal(c, "database not available")
		}

		var stats ServiceStats
		row := deps.DB.Pool.QueryRow(c.Context(), `
			SELECT
				(SELECT count(DISTINCT conversation_id) FROM route_records),
				(SELECT count(*) FROM route_records),
				COALESCE((SELECT sum(distance_km) FROM route_records), 0),
				COALESCE((SELECT max(created_at)::text FROM route_records), '')
		`)
		if err := row.Scan(&stats.Conversations, &stats.Records,
			&stats.TotalKm, &stats.LastRecordAt); err != nil {
			return errInternal(c, err.Error())
		}

		c.Set("Cache-Control", "public, max-age=60")
		return c.JSON(stats)
	}
}
