package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/agenthands/majordomo/internal/agents"
	"github.com/agenthands/majordomo/internal/config"
	"github.com/agenthands/majordomo/internal/llm"
	"github.com/agenthands/majordomo/internal/memory"
	"github.com/agenthands/majordomo/internal/orchestration"
	"github.com/agenthands/majordomo/internal/tools"
)

type Server struct {
	Hub      *orchestration.Majordomo
	sessions *sessionStore
}

// New wires the full agent system from config: memory stores, tool
// registry, LLM client, specialists, graph, and hub.
func New(ctx context.Context, cfg *config.Config) (*Server, error) {
	journal, err := memory.OpenJournalStore(cfg.Storage.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal store: %w", err)
	}
	stateCache := memory.NewStateCache()

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %w", err)
	}

	registry := tools.NewRegistry()
	registry.Register(tools.HumanApprove, tools.ApproveFunc(tools.AutoApprove))
	registry.Register(tools.JournalRecent, tools.JournalRecentTool(journal))
	registry.Register(tools.JournalSearch, tools.JournalSearchTool(journal))
	registry.Register(tools.SmartHomeGetState, tools.HomeGetTool(stateCache))
	registry.Register(tools.SmartHomeSetState, tools.HomeSetTool(stateCache))

	wikipedia := tools.NewWikipediaSearch()
	registry.Register(tools.SearchWikipedia, tools.SearchFunc(wikipedia.Search))

	if cfg.Search.GoogleAPIKey != "" && cfg.Search.GoogleCX != "" {
		google, err := tools.NewGoogleSearch(ctx, cfg.Search.GoogleAPIKey, cfg.Search.GoogleCX)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize google search: %w", err)
		}
		registry.Register(tools.SearchGoogle, tools.SearchFunc(google.Search))
	} else {
		log.Warn().Msg("google search not configured; oracle will rely on wikipedia")
	}

	switch cfg.Calendar.Provider {
	case "google":
		gcal, err := tools.NewGoogleCalendar(ctx, cfg.Calendar.CredentialsPath, cfg.Calendar.CalendarID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize google calendar: %w", err)
		}
		registry.Register(tools.CalendarCreateEvent, tools.CreateEventFunc(gcal.CreateEvent))
	default:
		local := tools.NewLocalCalendar()
		registry.Register(tools.CalendarCreateEvent, tools.CreateEventFunc(local.CreateEvent))
		registry.Register(tools.CalendarListEvents, tools.ListEventsFunc(local.ListUpcoming))
	}

	archivist := agents.NewArchivist(llmClient, registry)
	scribe := agents.NewScribe(llmClient, registry, journal, archivist)
	oracle := agents.NewOracle(llmClient, registry)
	sentinel := agents.NewSentinel(llmClient, registry, stateCache)

	contextBuilder := memory.NewContextBuilder(journal, stateCache)
	graph := orchestration.NewGraph(oracle, scribe, sentinel, contextBuilder)
	hub := orchestration.NewMajordomo(llmClient, graph)

	return &Server{
		Hub:      hub,
		sessions: newSessionStore(),
	}, nil
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/chat", s.Chat)

	return r
}

type ChatRequest struct {
	UserID    string `json:"user_id"`
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

func (s *Server) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.UserID == "" {
		req.UserID = "demo-user"
	}

	sessionKey := req.SessionID
	if sessionKey == "" {
		sessionKey = req.UserID
	}
	history := s.sessions.Recent(sessionKey, historyWindow)

	resp, err := s.Hub.HandleMessage(c.Request.Context(), req.UserID, req.Message, history)
	if err != nil {
		log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to handle message")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "I hit an internal problem handling that request. Please try again.",
		})
		return
	}

	s.sessions.Append(sessionKey,
		orchestration.ConversationTurn{Role: "user", Content: req.Message},
		orchestration.ConversationTurn{Role: "assistant", Content: resp.Reply},
	)

	c.JSON(http.StatusOK, gin.H{
		"reply":             resp.Reply,
		"trace":             resp.Trace,
		"specialist_result": resp.SpecialistResult,
	})
}
