package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
	"github.com/HJantango/wild-octave-august-sub004/internal/storage"
	"github.com/rs/zerolog/log"
)

// Digest is the daily order summary handed to staff.
type Digest struct {
	GeneratedAt     time.Time                   `json:"generated_at"`
	Recommendations domain.RecommendationResult `json:"recommendations"`
	Reminders       domain.ReminderResult       `json:"reminders"`
}

type DigestService struct {
	recommendations *RecommendationService
	clock           func() time.Time
}

func NewDigestService(recommendations *RecommendationService) *DigestService {
	return &DigestService{recommendations: recommendations, clock: recommendations.clock}
}

// Build computes recommendations and all of today's reminders, including those without a deadline.
func (s *DigestService) Build(ctx context.Context, weeks int) (Digest, error) {
	recs, err := s.recommendations.GetRecommendations(ctx, RecommendationOptions{Weeks: weeks})
	if err != nil {
		return Digest{}, err
	}
	reminders, err := s.recommendations.GetReminders(ctx, ReminderOptions{IncludeAll: true, IncludeUpcoming: true})
	if err != nil {
		return Digest{}, err
	}
	return Digest{GeneratedAt: s.clock(), Recommendations: recs, Reminders: reminders}, nil
}

var digestCSVHeader = []string{
	"vendor", "next_delivery", "days_until_delivery", "item", "variation",
	"avg_per_day", "on_hand", "suggested_quantity", "pack_size", "unit_name",
	"suggested_units", "suggested_pieces",
}

// WriteCSV writes one row per item that needs reordering, in vendor order.
func WriteCSV(w io.Writer, d Digest) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(digestCSVHeader); err != nil {
		return err
	}

	for _, v := range d.Recommendations.Vendors {
		for _, it := range v.Items {
			if !it.NeedsReorder {
				continue
			}
			record := []string{
				v.VendorName,
				v.NextDelivery,
				strconv.Itoa(v.DaysUntilDelivery),
				it.ItemName,
				it.VariationName,
				strconv.FormatFloat(it.AveragePerDay, 'f', 1, 64),
				strconv.Itoa(it.OnHand),
				strconv.Itoa(it.SuggestedQuantity),
				strconv.Itoa(it.PackSize),
				it.UnitName,
				strconv.Itoa(it.SuggestedUnits),
				strconv.Itoa(it.SuggestedPieces),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, d Digest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// Upload stores the digest as <prefix>/<date>.json and <prefix>/<date>.csv.
func Upload(ctx context.Context, store storage.ObjectStorage, prefix string, d Digest) ([]string, error) {
	date := d.GeneratedAt.Format("2006-01-02")

	var jsonBuf, csvBuf bytes.Buffer
	if err := WriteJSON(&jsonBuf, d); err != nil {
		return nil, fmt.Errorf("error encoding digest json: %w", err)
	}
	if err := WriteCSV(&csvBuf, d); err != nil {
		return nil, fmt.Errorf("error encoding digest csv: %w", err)
	}

	keys := []string{
		fmt.Sprintf("%s/%s.json", prefix, date),
		fmt.Sprintf("%s/%s.csv", prefix, date),
	}
	payloads := [][]byte{jsonBuf.Bytes(), csvBuf.Bytes()}
	for i, key := range keys {
		if err := store.UploadObject(ctx, key, payloads[i]); err != nil {
			return nil, fmt.Errorf("error uploading %s: %w", key, err)
		}
		log.Info().Str("key", key).Int("bytes", len(payloads[i])).Msg("digest uploaded")
	}
	return keys, nil
}
