package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nailsdg/salon-api/internal/cache"
	"github.com/nailsdg/salon-api/internal/httperr"
	"github.com/nailsdg/salon-api/internal/usecase/accounting"
)

const statsCacheKey = "accounting:stats"

type AccountingHandler struct {
	statsUC  *accounting.GetStats
	cache    *cache.Cache
	cacheTTL time.Duration
	logger   zerolog.Logger
}

func NewAccountingHandler(statsUC *accounting.GetStats, statsCache *cache.Cache, cacheTTL time.Duration, logger zerolog.Logger) *AccountingHandler {
	return &AccountingHandler{
		statsUC:  statsUC,
		cache:    statsCache,
		cacheTTL: cacheTTL,
		logger:   logger.With().Str("component", "accounting").Logger(),
	}
}

func (h *AccountingHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	if payload, ok := h.cache.Get(ctx, statsCacheKey); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
		return
	}

	stats, err := h.statsUC.Execute(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_compute_stats", "Could not compute revenue stats.")
		return
	}

	if payload, err := json.Marshal(stats); err == nil {
		h.cache.Set(ctx, statsCacheKey, payload, h.cacheTTL)
	}

	c.JSON(http.StatusOK, stats)
}
