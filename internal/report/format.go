package report

import (
	"fmt"
	"strings"
)

const (
	metricName = "ping_time"
	metricHelp = "Round Trip Time to Endpoint"
)

// FormatPayload renders the ping_time gauge in the text exposition format
func FormatPayload(client, endpoint string, rttMillis int64) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# HELP %s %s\n", metricName, metricHelp)
	fmt.Fprintf(&b, "# TYPE %s gauge\n", metricName)
	fmt.Fprintf(&b, "%s{client=%q, endpoint=%q} %d\n", metricName, client, endpoint, rttMillis)
	return b.String()
}
