package middlewares

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"modelscout/catalog-api/internal/domain/billing"
	"modelscout/catalog-api/internal/infrastructure/metrics"
)

const HeaderCallCharge = "X-Call-Charge"

// Charge advertises the fixed per-call price of an operation up front and
// records the charge once the call completes without a client or server
// error. Request metrics ride along since both key on the operation.
func Charge(ledger *billing.Ledger, op billing.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header(HeaderCallCharge, strconv.FormatInt(int64(ledger.ChargeFor(op)), 10))

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		metrics.RequestsTotal.WithLabelValues(string(op), strconv.Itoa(status)).Inc()
		metrics.RequestDuration.WithLabelValues(string(op)).Observe(time.Since(start).Seconds())

		if status < 400 {
			amount := ledger.Record(op, c.Writer.Header().Get(HeaderRequestID))
			metrics.ChargesTotal.WithLabelValues(string(op)).Add(float64(amount))
		}
	}
}
