package server

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pierson-davis/on-brand-ios-sub000/internal/common"
	"github.com/pierson-davis/on-brand-ios-sub000/misc"
)

// Required-field checks live here, not in the manager: the manager stores
// whatever it is given, matching the model's "validation is a UI concern"
// split.
func postRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req common.Requirement
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if req.Title == "" || req.BrandName == "" {
			c.JSON(400, misc.StatusErr("title and brandName are required"))
			return
		}
		if req.Type == "" {
			req.Type = common.CustomRequirement
		}
		if !req.Type.IsValid() {
			c.JSON(400, misc.StatusErr("unknown requirement type"))
			return
		}
		req.Id = "" // ids are always assigned here
		s.Reqs.Add(&req)
		c.JSON(200, misc.StatusOK(req.Id))
	}
}

func getRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := s.Reqs.Get(c.Param("id"))
		if !ok {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, r)
	}
}

func putRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req common.Requirement
		if err := misc.BindJSON(c, &req); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		req.Id = c.Param("id")
		if !s.Reqs.Update(&req) {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, misc.StatusOK(req.Id))
	}
}

func delRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if !s.Reqs.Delete(id) {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, misc.StatusOK(id))
	}
}

func completeRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := s.Reqs.MarkCompleted(c.Param("id"))
		if !ok {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, r)
	}
}

func verifyRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Verifier string                    `json:"verifier"`
			Method   common.VerificationMethod `json:"method"`
		}
		if err := misc.BindJSON(c, &body); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if body.Verifier == "" {
			c.JSON(400, misc.StatusErr("verifier is required"))
			return
		}

		id := c.Param("id")
		if body.Method == "" {
			body.Method = common.VerifyManual
			if r, ok := s.Reqs.Get(id); ok && r.CanAutoVerify() {
				body.Method = common.VerifyAutomatic
			}
		}

		r, ok := s.Reqs.MarkVerified(id, body.Verifier, body.Method)
		if !ok {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, r)
	}
}

func commentRequirement(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Text        string `json:"text"`
			Author      string `json:"author"`
			IsFromBrand bool   `json:"isFromBrand"`
		}
		if err := misc.BindJSON(c, &body); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if body.Text == "" || body.Author == "" {
			c.JSON(400, misc.StatusErr("text and author are required"))
			return
		}
		r, ok := s.Reqs.AddComment(c.Param("id"), body.Text, body.Author, body.IsFromBrand)
		if !ok {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, r)
	}
}

func setRequirementStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Status common.RequirementStatus `json:"status"`
		}
		if err := misc.BindJSON(c, &body); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if !body.Status.IsValid() {
			c.JSON(400, misc.StatusErr("unknown status"))
			return
		}
		r, ok := s.Reqs.UpdateStatus(c.Param("id"), body.Status)
		if !ok {
			c.JSON(404, misc.StatusErr("requirement not found"))
			return
		}
		c.JSON(200, r)
	}
}

func getFilteredRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.Filtered())
	}
}

func getAllRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.All())
	}
}

func clearAllRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Reqs.ClearAll()
		c.JSON(200, misc.StatusOK(""))
	}
}

func applyRequirementFilters(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f common.RequirementFilters
		if err := misc.BindJSON(c, &f); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		s.Reqs.ApplyFilters(f)
		c.JSON(200, s.Reqs.Filtered())
	}
}

func clearRequirementFilters(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		s.Reqs.ClearFilters()
		c.JSON(200, s.Reqs.Filtered())
	}
}

func getCounts(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.Counts())
	}
}

func getAnalytics(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.Analytics())
	}
}

func exportRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := s.Reqs.Export()
		if data == nil {
			c.JSON(500, misc.StatusErr("failed to export requirements"))
			return
		}
		c.Data(200, gin.MIMEJSON, data)
	}
}

func importRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if !s.Reqs.Import(data) {
			c.JSON(400, misc.StatusErr("failed to import requirements"))
			return
		}
		c.JSON(200, misc.StatusOK(""))
	}
}

func getRequirementsForBrand(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.ForBrand(c.Param("brand")))
	}
}

func getRequirementsForCampaign(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.ForCampaign(c.Param("campaign")))
	}
}

func getRequirementsOfType(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.OfType(common.RequirementType(c.Param("type"))))
	}
}

func getRequirementsWithStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.WithStatus(common.RequirementStatus(c.Param("status"))))
	}
}

func getRequirementsWithPriority(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.WithPriority(common.RequirementPriority(c.Param("priority"))))
	}
}

func getOverdueRequirements(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.Overdue())
	}
}

func getRequirementsDueSoon(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		days, err := strconv.Atoi(c.Param("days"))
		if err != nil || days < 0 {
			days = s.Cfg.DueSoonDays
		}
		c.JSON(200, s.Reqs.DueSoon(days))
	}
}

func getRequirementsOnPlatform(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, s.Reqs.OnPlatform(common.SocialPlatform(c.Param("platform"))))
	}
}
