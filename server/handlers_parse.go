package server

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/gin-gonic/gin"

	"github.com/pierson-davis/on-brand-ios-sub000/misc"
	"github.com/pierson-davis/on-brand-ios-sub000/platforms/vision"
)

func parseDeal(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Image string `json:"image"`
		}
		if err := misc.BindJSON(c, &body); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if body.Image == "" {
			c.JSON(400, misc.StatusErr("image is required"))
			return
		}

		raw, err := base64.StdEncoding.DecodeString(body.Image)
		if err != nil {
			c.JSON(400, misc.StatusErr("image must be base64 encoded"))
			return
		}
		img, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			c.JSON(400, misc.StatusErr("could not decode image"))
			return
		}

		info, err := s.Vision.ParseDealEmail(c.Request.Context(), img)
		if err != nil {
			var apiErr *vision.APIError
			switch {
			case errors.Is(err, vision.ErrNotConfigured):
				c.JSON(503, misc.StatusErr(err.Error()))
			case errors.Is(err, vision.ErrInvalidImage):
				c.JSON(400, misc.StatusErr(err.Error()))
			case errors.As(err, &apiErr):
				c.JSON(502, misc.StatusErr(err.Error()))
			default:
				c.JSON(500, misc.StatusErr(err.Error()))
			}
			return
		}
		c.JSON(200, info)
	}
}

// acceptParsedDeal is the review step: the client edits the parse it got
// back from parseDeal and posts it here to turn it into a tracked
// requirement.
func acceptParsedDeal(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		var info vision.ParsedDealInfo
		if err := misc.BindJSON(c, &info); err != nil {
			c.JSON(400, misc.StatusErr(err.Error()))
			return
		}
		if info.Title == "" || info.Brand == "" {
			c.JSON(400, misc.StatusErr("title and brand are required"))
			return
		}
		req := info.ToRequirement()
		s.Reqs.Add(req)
		c.JSON(200, req)
	}
}

func getAIStatus(s *Server) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"mode":    s.Creds.Mode(),
			"status":  s.Creds.Status(),
			"display": s.Creds.Status().DisplayName(),
			"ready":   s.Creds.IsReady(),
			"parsing": s.Vision.IsParsing(),
		})
	}
}
