package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stash-indexer/internal/affix"
	"stash-indexer/internal/itemtype"
	"stash-indexer/internal/logger"
	"stash-indexer/internal/parse"
	"stash-indexer/internal/store"
)

type listingResponse struct {
	ItemID      string     `json:"item_id"`
	StashID     string     `json:"stash_id"`
	AccountName string     `json:"account_name"`
	League      string     `json:"league"`
	Category    string     `json:"category"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Fingerprint string     `json:"fingerprint"`
	AddedAt     time.Time  `json:"added_at"`
	SeenAt      time.Time  `json:"seen_at"`
	SoldAt      *time.Time `json:"sold_at"`
	Live        bool       `json:"live"`
}

// normalizedView holds values rescaled to canonical quality.
type normalizedView struct {
	Quality    int64           `json:"quality"`
	Defences   *affix.Defences `json:"defences,omitempty"`
	PhysDamage *int64          `json:"phys_damage,omitempty"`
}

type itemResponse struct {
	Listing    listingResponse `json:"listing"`
	Sockets    string          `json:"sockets"`
	Stats      map[string]any  `json:"stats"`
	Normalized *normalizedView `json:"normalized,omitempty"`
}

// GetItem handles GET /api/v1/items/{id}.
func (h *Handler) GetItem(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	log := logger.WithRequestID(h.logger, c).With(zap.String("item_id", id))

	listing, err := h.store.GetListing(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		log.Error("failed to load listing", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	cat := itemtype.Category(listing.Category)
	resp := itemResponse{
		Listing: listingResponse{
			ItemID:      listing.ItemID,
			StashID:     listing.StashID,
			AccountName: listing.AccountName,
			League:      parse.League(listing.League).Name(),
			Category:    cat.String(),
			Price:       listing.PriceAmount,
			Currency:    parse.Currency(listing.Currency).String(),
			Fingerprint: listing.Fingerprint,
			AddedAt:     listing.AddedAt,
			SeenAt:      listing.SeenAt,
			SoldAt:      listing.SoldAt,
			Live:        listing.Live(),
		},
	}

	row, err := h.store.GetItemStats(ctx, id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusOK, resp)
		return
	case err != nil:
		log.Error("failed to load item stats", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}

	values, err := store.DecodeStats(row)
	if err != nil {
		log.Error("stored stats are unreadable", zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load item"})
		return
	}
	resp.Sockets = row.Sockets
	resp.Stats = values

	rec, err := affix.RecordFromValues(row.ItemID, itemtype.Category(row.Category), row.Sockets, values)
	if err != nil {
		log.Warn("cannot build normalized view", zap.Error(err))
	} else {
		resp.Normalized = normalize(rec)
	}
	c.JSON(http.StatusOK, resp)
}

func normalize(rec *affix.StatRecord) *normalizedView {
	view := &normalizedView{Quality: affix.CanonicalQuality}
	switch {
	case rec.Category.IsArmour():
		d := affix.NormalizedDefences(rec)
		view.Defences = &d
	case rec.Category.IsWeapon():
		p := affix.NormalizedPhysDamage(rec)
		view.PhysDamage = &p
	default:
		return nil
	}
	return view
}
