package httpadapter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"brand-lift/internal/core/port"
)

// handleExport runs a simulation and writes it as CSV: one "channel" row
// per ranked channel followed by one "decay" row per channel and day, and
// the campaign total under the channel name "total".
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	resp, ok := h.simulate(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "simulation-"+resp.ID+".csv"))
	if err := writeCSV(csv.NewWriter(w), resp); err != nil {
		h.logger.Error("write csv error", slog.Any("error", err))
	}
}

func writeCSV(cw *csv.Writer, resp *port.SimulationResp) error {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

	_ = cw.Write([]string{"record", "channel", "day", "allocation", "lift", "share", "recommendation"})
	for _, row := range resp.Ranking {
		_ = cw.Write([]string{
			"channel", row.Channel, "",
			f(resp.Allocation.Values[row.Channel]),
			f(row.Lift),
			f(row.Share),
			f(resp.Recommendation.Values[row.Channel]),
		})
	}
	for _, name := range resp.Lift.Channels() {
		for _, p := range resp.Decay.Channels[name] {
			_ = cw.Write([]string{"decay", name, strconv.Itoa(p.Day), "", f(p.Score), "", ""})
		}
	}
	for _, p := range resp.Decay.Total {
		_ = cw.Write([]string{"decay", "total", strconv.Itoa(p.Day), "", f(p.Score), "", ""})
	}
	cw.Flush()
	return cw.Error()
}
