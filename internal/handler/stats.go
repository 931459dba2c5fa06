package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/ExploreWithMe/internal/domain"
	"github.com/stpnv0/ExploreWithMe/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const statsTimeLayout = "2006-01-02 15:04:05"

type StatsSvc interface {
	Record(hit domain.Hit)
	ViewStats(ctx context.Context, params domain.ViewStatsParams) ([]domain.ViewStats, error)
}

func (h *Handler) SaveHit(c *ginext.Context) {
	var req dto.HitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	hit := domain.Hit{App: req.App, URI: req.URI, IP: req.IP}
	if req.Timestamp != "" {
		ts, err := time.Parse(statsTimeLayout, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid timestamp format, expected " + statsTimeLayout,
			})
			return
		}
		hit.Timestamp = ts.UTC()
	}

	h.statsService.Record(hit)

	c.Status(http.StatusCreated)
}

func (h *Handler) GetStats(c *ginext.Context) {
	start, err := time.Parse(statsTimeLayout, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start"})
		return
	}
	end, err := time.Parse(statsTimeLayout, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end"})
		return
	}
	unique, err := strconv.ParseBool(c.DefaultQuery("unique", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid unique"})
		return
	}

	stats, err := h.statsService.ViewStats(c.Request.Context(), domain.ViewStatsParams{
		Start:  start,
		End:    end,
		URIs:   c.QueryArray("uris"),
		Unique: unique,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ViewStatsResponse, 0, len(stats))
	for _, v := range stats {
		resp = append(resp, dto.ToViewStatsResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}
