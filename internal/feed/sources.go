package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"

	"github.com/skyfuse/skyfuse/internal/astro"
	"github.com/skyfuse/skyfuse/internal/logging"
	"github.com/skyfuse/skyfuse/internal/scene"
)

const (
	// ALERCEURL lists the latest ZTF transients classified as supernovae.
	ALERCEURL = "https://alerce.online/api/v1/objects?classifier=stamp_classifier&class_name=SN&page_size=50&order_by=lastmjd&order_mode=DESC"

	// GWOSCURL lists the latest gravitational-wave events.
	GWOSCURL = "https://gw-openscience.org/api/v1/events/?page_size=10"
)

// alerceObject is one ZTF alert as returned by the ALERCE API.
type alerceObject struct {
	OID     string  `json:"oid"`
	MeanRA  float64 `json:"meanra"`
	MeanDec float64 `json:"meandec"`
	LastMJD float64 `json:"lastmjd"`
}

// gwoscResponse is the GWOSC event listing. Events are keyed by name;
// only the GPS time is used.
type gwoscResponse struct {
	Results map[string]struct {
		GPS float64 `json:"GPS"`
	} `json:"results"`
}

// FetchZTF retrieves the latest ZTF transients from ALERCE.
func FetchZTF(ctx context.Context, client *http.Client) ([]scene.EventRecord, error) {
	raw, err := getJSON(ctx, client, ALERCEURL)
	if err != nil {
		return nil, fmt.Errorf("fetch ZTF data: %w", err)
	}

	var alerts []alerceObject
	if err := json.Unmarshal(raw, &alerts); err != nil {
		return nil, fmt.Errorf("decode ALERCE response: %w", err)
	}

	events := make([]scene.EventRecord, 0, len(alerts))
	for _, a := range alerts {
		events = append(events, scene.EventRecord{
			ID:     a.OID,
			Source: scene.SourceZTF,
			Time:   astro.MJDToTime(a.LastMJD),
			RAdeg:  a.MeanRA,
			DecDeg: a.MeanDec,
		})
	}
	return events, nil
}

// FetchGWOSC retrieves the latest gravitational-wave events. GW events
// are localized by probability skymaps, not points, so each event gets
// a stable pseudo-random sky position derived from its name.
func FetchGWOSC(ctx context.Context, client *http.Client) ([]scene.EventRecord, error) {
	raw, err := getJSON(ctx, client, GWOSCURL)
	if err != nil {
		return nil, fmt.Errorf("fetch GWOSC data: %w", err)
	}

	var resp gwoscResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode GWOSC response: %w", err)
	}

	events := make([]scene.EventRecord, 0, len(resp.Results))
	for name, ev := range resp.Results {
		ra, dec := skyPositionFromID(name)
		events = append(events, scene.EventRecord{
			ID:     name,
			Source: scene.SourceGWOSC,
			Time:   astro.GPSToTime(ev.GPS),
			RAdeg:  ra,
			DecDeg: dec,
		})
	}
	return events, nil
}

// Live assembles the dataset the way the aggregate backend does: fetch
// both surveys, fall back to mock ZTF data when ALERCE is unreachable,
// tolerate a missing GWOSC listing, and correlate locally. Failures
// degrade; they never propagate.
func Live(ctx context.Context, client *http.Client, log *logging.Logger) ([]scene.EventRecord, [][2]string) {
	ztf, err := FetchZTF(ctx, client)
	if err != nil || len(ztf) == 0 {
		if err != nil {
			log.Warn("ZTF fetch failed, using mock data: %v", err)
		}
		ztf = MockEvents(MockEventCount)
	} else {
		log.Info("fetched %d ZTF events", len(ztf))
	}

	gw, err := FetchGWOSC(ctx, client)
	if err != nil {
		log.Warn("GWOSC fetch failed: %v", err)
		gw = nil
	} else {
		log.Info("fetched %d GW events", len(gw))
	}

	events := append(ztf, gw...)
	return events, Correlate(events)
}

// skyPositionFromID hashes an event identifier to a position on the
// sphere. The same id always lands in the same place across reloads.
func skyPositionFromID(id string) (raDeg, decDeg float64) {
	h := fnv.New64a()
	h.Write([]byte(id))
	sum := h.Sum64()

	ra := float64(sum%360000) / 1000.0              // [0, 360)
	dec := float64((sum/360000)%180000)/1000.0 - 90 // [-90, 90)
	return ra, dec
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
