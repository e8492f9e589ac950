package aggregation

import (
	"sort"

	"marketplace-admin/internal/models"
	"marketplace-admin/internal/repository"
)

// Auction assembles an auction with its creator, current bidder and bid history.
// Bids are ordered newest first; each keeps its place even when the bidder is gone.
func (a *Assembler) Auction(doc repository.Document, cache *EntityCache) models.Auction {
	d := doc.Data

	auction := models.Auction{
		ID:            doc.ID,
		Name:          str(d, "name", "title"),
		Description:   str(d, "description"),
		StartingPrice: num(d, "starting_price", "startingPrice"),
		CreatorID:     str(d, "creator_id", "creatorId", "createdBy"),
		BidderID:      str(d, "bidder_id", "bidderId"),
		EndTime:       optionalTime(d, "end_time", "endTime"),
		ImageURLs:     strs(d, "image_urls", "imageUrls"),
		IsAuctionEnd:  boolean(d, false, "isAuctionEnd", "is_auction_end"),
		IsDeleted:     boolean(d, false, "isDeleted", "is_deleted"),
		CategoryID:    str(d, "category_id", "categoryId"),
		CreatedAt:     a.requiredTime(d, "created_at", "createdAt"),
	}
	auction.BidHistory = a.bidHistory(d, cache)
	auction.CurrentPrice = currentPrice(auction.StartingPrice, auction.BidHistory)
	auction.Creator = a.resolveUser(cache, auction.CreatorID)
	auction.CurrentBidder = a.resolveUser(cache, auction.BidderID)
	return auction
}

func (a *Assembler) bidHistory(data map[string]any, cache *EntityCache) []models.BidEntry {
	raw := maps(data, "bid_history", "bidHistory")
	bids := make([]models.BidEntry, 0, len(raw))
	for _, b := range raw {
		userID := str(b, "user_id", "userId")
		bids = append(bids, models.BidEntry{
			UserID:    userID,
			Amount:    num(b, "amount"),
			Timestamp: a.requiredTime(b, "timestamp", "createdAt", "created_at"),
			UserInfo:  a.resolveUser(cache, userID),
		})
	}
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Timestamp.After(bids[j].Timestamp)
	})
	return bids
}

func currentPrice(starting float64, bids []models.BidEntry) float64 {
	if len(bids) == 0 {
		return starting
	}
	highest := bids[0].Amount
	for _, b := range bids[1:] {
		if b.Amount > highest {
			highest = b.Amount
		}
	}
	return highest
}
