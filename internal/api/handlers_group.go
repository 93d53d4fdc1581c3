package api

import "Commento/internal/api/handler"

// HandlersGroup bundles every initialized handler for router setup.
type HandlersGroup struct {
	ReviewHandler   *handler.ReviewHandler
	AnalysisHandler *handler.AnalysisHandler
	ServiceHandler  *handler.ServiceHandler
}
