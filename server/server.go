package server

import (
	"time"

	"github.com/boltdb/bolt"
	"github.com/gin-gonic/gin"

	"github.com/pierson-davis/on-brand-ios-sub000/config"
	"github.com/pierson-davis/on-brand-ios-sub000/internal/creds"
	"github.com/pierson-davis/on-brand-ios-sub000/internal/requirements"
	"github.com/pierson-davis/on-brand-ios-sub000/misc"
	"github.com/pierson-davis/on-brand-ios-sub000/platforms/vision"
)

// Server is the composition root: it owns the DB, the requirements
// manager, the credential provider and the vision client, and wires the
// HTTP routes onto them.
type Server struct {
	Cfg *config.Config

	db *bolt.DB
	r  *gin.Engine

	Creds  *creds.Provider
	Reqs   *requirements.Manager
	Vision *vision.Client

	stopOverdue func()
}

func New(cfg *config.Config, r *gin.Engine) (*Server, error) {
	db := misc.OpenDB(cfg.DBPath, cfg.DBName)
	if err := misc.CreateBuckets(db, cfg.Bucket.All); err != nil {
		return nil, err
	}

	cp := creds.New(cfg)
	srv := &Server{
		Cfg:    cfg,
		db:     db,
		r:      r,
		Creds:  cp,
		Reqs:   requirements.New(db, cfg.Bucket.Requirements, requirements.LogNotifier{}),
		Vision: vision.NewClient(cfg, cp),
	}

	interval := time.Duration(cfg.OverdueCheck) * time.Hour
	if interval == 0 {
		interval = time.Hour
	}
	srv.stopOverdue = srv.Reqs.StartOverdueWatch(interval)

	srv.initializeRoutes(r)
	return srv, nil
}

func (srv *Server) initializeRoutes(r *gin.Engine) {
	v1 := r.Group("/api/v1")

	v1.POST("/requirement", postRequirement(srv))
	v1.GET("/requirement/:id", getRequirement(srv))
	v1.PUT("/requirement/:id", putRequirement(srv))
	v1.DELETE("/requirement/:id", delRequirement(srv))

	v1.POST("/requirement/:id/complete", completeRequirement(srv))
	v1.POST("/requirement/:id/verify", verifyRequirement(srv))
	v1.POST("/requirement/:id/comment", commentRequirement(srv))
	v1.POST("/requirement/:id/status", setRequirementStatus(srv))

	v1.GET("/requirements", getFilteredRequirements(srv))
	v1.GET("/requirements/all", getAllRequirements(srv))
	v1.DELETE("/requirements", clearAllRequirements(srv))
	v1.POST("/requirements/filters", applyRequirementFilters(srv))
	v1.DELETE("/requirements/filters", clearRequirementFilters(srv))

	v1.GET("/requirements/counts", getCounts(srv))
	v1.GET("/requirements/analytics", getAnalytics(srv))
	v1.GET("/requirements/export", exportRequirements(srv))
	v1.POST("/requirements/import", importRequirements(srv))

	v1.GET("/requirements/brand/:brand", getRequirementsForBrand(srv))
	v1.GET("/requirements/campaign/:campaign", getRequirementsForCampaign(srv))
	v1.GET("/requirements/type/:type", getRequirementsOfType(srv))
	v1.GET("/requirements/status/:status", getRequirementsWithStatus(srv))
	v1.GET("/requirements/priority/:priority", getRequirementsWithPriority(srv))
	v1.GET("/requirements/overdue", getOverdueRequirements(srv))
	v1.GET("/requirements/dueSoon/:days", getRequirementsDueSoon(srv))
	v1.GET("/requirements/platform/:platform", getRequirementsOnPlatform(srv))

	v1.POST("/parseDeal", parseDeal(srv))
	v1.POST("/parseDeal/accept", acceptParsedDeal(srv))
	v1.GET("/aiStatus", getAIStatus(srv))
}

func (srv *Server) Run() error {
	return srv.r.Run(srv.Cfg.Host + ":" + srv.Cfg.Port)
}

func (srv *Server) Close() error {
	srv.stopOverdue()
	return srv.db.Close()
}
