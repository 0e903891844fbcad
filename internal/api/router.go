package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/b2bcommerce/payment-method-service/internal/handlers"
	"github.com/b2bcommerce/payment-method-service/internal/interfaces"
	"github.com/b2bcommerce/payment-method-service/internal/service"
	"github.com/b2bcommerce/payment-method-service/internal/telemetry"
)

func NewRouter(orchestrator *service.Orchestrator, payments interfaces.PaymentService, recorder interfaces.SubmissionRecorder) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-method-service"})
	})

	// Checkout payment routes
	checkoutHandler := handlers.NewCheckoutHandler(orchestrator, payments)
	r.POST("/checkouts/:id/stages", checkoutHandler.StageAction)
	r.GET("/carts/:cartId/payment-info", checkoutHandler.GetPaymentInfo)

	// Submission audit routes
	stateHandler := handlers.NewSubmissionStateHandler(recorder)
	r.GET("/submissions/:checkoutId", stateHandler.GetSubmissionState)

	return r
}
