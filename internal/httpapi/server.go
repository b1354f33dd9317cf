package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"riichiscore/internal/cache"
	"riichiscore/internal/events"
	"riichiscore/internal/mahjong"
	"riichiscore/internal/store"
)

// Deps wires the optional upstream collaborators into the handlers. Idem,
// History, Rulesets, Feedback and Events may be nil: the handlers then
// degrade to always recomputing, not persisting/publishing, and
// rejecting results/feedback requests, per SPEC_FULL.md §4.7.
type Deps struct {
	JwtSecret string
	Results   *cache.ResultCache
	Idem      *store.IdempotencyStore
	Rulesets  *store.RulesetStore
	History   *store.HistoryStore
	Feedback  *store.FeedbackStore
	Events    *events.Publisher
}

// NewEngine builds the gin engine for cmd/scoreserver.
func NewEngine(deps Deps) *gin.Engine {
	engine := gin.New()
	engine.Use(RequestIDMiddleware(), LoggerMiddleware(), RecoveryMiddleware())

	engine.GET("/healthz", healthzHandler)

	v1 := engine.Group("/v1")
	v1.Use(AuthMiddleware(deps.JwtSecret))
	v1.POST("/score", scoreHandler(deps))
	v1.GET("/results/:id", resultHandler(deps))
	v1.POST("/score/feedback", feedbackHandler(deps))
	v1.GET("/rulesets/:name", rulesetHandler(deps))

	return engine
}

func healthzHandler(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}

func scoreHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ScoreRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, ErrorResponse{Kind: "invalid_tile", Detail: err.Error()})
			return
		}

		hand, ctx, rules, err := req.ToCore()
		if err != nil {
			c.JSON(400, ErrorResponse{Kind: "invalid_tile", Detail: err.Error()})
			return
		}

		reqCtx := c.Request.Context()
		idemKey := c.GetHeader("Idempotency-Key")
		if idemKey != "" && deps.Idem != nil {
			if cached, found, err := deps.Idem.Lookup(reqCtx, idemKey); err == nil && found {
				c.JSON(200, ScoreResponseFromCore(cached))
				return
			}
		}

		cacheKey, keyErr := cache.Key(hand, ctx, rules)
		if keyErr == nil && deps.Results != nil {
			if cached, found := deps.Results.Get(cacheKey); found {
				c.JSON(200, ScoreResponseFromCore(cached))
				return
			}
		}

		result, scoringErr := mahjong.Score(hand, ctx, rules)
		if scoringErr != nil {
			c.JSON(statusForKind(scoringErr.Kind), ErrorResponse{Kind: scoringErr.Kind, Detail: scoringErr.Detail})
			return
		}

		if keyErr == nil && deps.Results != nil {
			deps.Results.Set(cacheKey, result)
		}
		if idemKey != "" && deps.Idem != nil {
			if err := deps.Idem.Remember(reqCtx, idemKey, result); err != nil {
				c.Error(err)
			}
		}

		resultID := uuid.NewString()
		if deps.Idem != nil {
			if err := deps.Idem.Remember(reqCtx, resultID, result); err != nil {
				c.Error(err)
			}
		}

		clientID, _ := c.Get("clientID")
		clientIDStr, _ := clientID.(string)

		if deps.History != nil {
			rec := store.ScoredHand{ClientID: clientIDStr, Hand: hand, Context: ctx, Rules: rules, Result: result, ScoredAt: time.Now()}
			if err := deps.History.Log(reqCtx, rec); err != nil {
				c.Error(err)
			}
		}
		if deps.Events != nil {
			evt := events.ScoreComputed{ClientID: clientIDStr, Result: result, ScoredAt: time.Now()}
			if err := deps.Events.Publish(evt); err != nil {
				c.Error(err)
			}
		}

		resp := ScoreResponseFromCore(result)
		resp.ResultID = resultID
		c.JSON(200, resp)
	}
}

// resultHandler implements GET /v1/results/:id: a previously computed
// result retrieved from the TTL-backed idempotency store by the id
// returned from POST /v1/score.
func resultHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Idem == nil {
			c.JSON(404, ErrorResponse{Kind: "not_found", Detail: "results store not configured"})
			return
		}
		id := c.Param("id")
		result, found, err := deps.Idem.Lookup(c.Request.Context(), id)
		if err != nil {
			c.JSON(500, ErrorResponse{Kind: "internal", Detail: err.Error()})
			return
		}
		if !found {
			c.JSON(404, ErrorResponse{Kind: "not_found", Detail: "record not found or expired"})
			return
		}
		resp := ScoreResponseFromCore(result)
		resp.ResultID = id
		c.JSON(200, resp)
	}
}

// feedbackHandler implements POST /v1/score/feedback, archiving client
// feedback on a previously returned result.
func feedbackHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Feedback == nil {
			c.JSON(503, ErrorResponse{Kind: "unavailable", Detail: "feedback store is not configured"})
			return
		}
		var req FeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(400, ErrorResponse{Kind: "invalid_request", Detail: err.Error()})
			return
		}
		clientID, _ := c.Get("clientID")
		clientIDStr, _ := clientID.(string)

		fb := store.Feedback{ResultID: req.ResultID, ClientID: clientIDStr, Comment: req.Comment, SubmittedAt: time.Now()}
		if err := deps.Feedback.Save(c.Request.Context(), fb); err != nil {
			c.JSON(500, ErrorResponse{Kind: "internal", Detail: err.Error()})
			return
		}
		c.JSON(200, FeedbackResponse{Status: "ok"})
	}
}

func rulesetHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.Rulesets == nil {
			c.JSON(404, ErrorResponse{Kind: "not_found", Detail: "ruleset preset store not configured"})
			return
		}
		name := c.Param("name")
		rules, err := deps.Rulesets.Find(c.Request.Context(), name)
		if err != nil {
			c.JSON(404, ErrorResponse{Kind: "not_found", Detail: err.Error()})
			return
		}
		c.JSON(200, rulesetFromCore(rules))
	}
}

// statusForKind maps a ScoringError.Kind to an HTTP status per
// SPEC_FULL.md §7: shape/scoring errors are 422, grammar/context-conflict
// errors are 400.
func statusForKind(kind string) int {
	switch kind {
	case mahjong.KindNotAWinningShape, mahjong.KindNoYaku:
		return 422
	default:
		return 400
	}
}
