package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"whisper/internal/domain"
	"whisper/internal/host"
	"whisper/internal/whisper"
)

// Server dispatches HTTP calls into the contract through the host's
// serialization point.
type Server struct {
	contract *whisper.Contract
	host     *host.Memory
	log      zerolog.Logger
}

// New returns a server over the given contract and host.
func New(contract *whisper.Contract, h *host.Memory, log zerolog.Logger) *Server {
	return &Server{contract: contract, host: h, log: log}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "whisperd"})
	})

	mux.HandleFunc("POST /faucet", s.handleFaucet)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("POST /messages", s.handleMessage)
	mux.HandleFunc("POST /messages/paid", s.handlePaidMessage)
	mux.HandleFunc("POST /groups", s.handleCreateGroup)
	mux.HandleFunc("POST /groups/{id}/messages", s.handleGroupMessage)
	mux.HandleFunc("GET /profiles/{account}", s.handleGetProfile)
	mux.HandleFunc("GET /profiles/{account}/exists", s.handleHasProfile)
	mux.HandleFunc("GET /groups/{id}", s.handleGetGroup)
	mux.HandleFunc("GET /stats", s.handleStats)
	mux.HandleFunc("GET /balances/{account}", s.handleBalance)

	return mux
}

func (s *Server) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req FaucetRequest
	if !decode(w, r, &req) {
		return
	}
	s.host.Credit(req.Account, req.Amount)
	s.log.Info().Str("account", req.Account.String()).Uint64("amount", uint64(req.Amount)).Msg("faucet")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.host.Invoke(req.Caller, req.Deposit, func(env domain.Env) error {
		return s.contract.RegisterKey(env, req.X25519Pubkey, req.DisplayName)
	})
	s.finish(w, "register_key", req.Caller, err)
}

func (s *Server) handleMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.host.Invoke(req.Caller, 0, func(env domain.Env) error {
		return s.contract.SendMessage(env, req.To, req.EncryptedBody, req.Nonce, req.RecipientKeyVersion, req.ReplyTo)
	})
	s.finish(w, "send_message", req.Caller, err)
}

func (s *Server) handlePaidMessage(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.host.Invoke(req.Caller, req.Deposit, func(env domain.Env) error {
		return s.contract.SendMessageWithPayment(env, req.To, req.EncryptedBody, req.Nonce, req.RecipientKeyVersion, req.ReplyTo)
	})
	s.finish(w, "send_message_with_payment", req.Caller, err)
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.host.Invoke(req.Caller, req.Deposit, func(env domain.Env) error {
		return s.contract.CreateGroup(env, req.GroupID, req.Name, req.MemberKeys)
	})
	s.finish(w, "create_group", req.Caller, err)
}

func (s *Server) handleGroupMessage(w http.ResponseWriter, r *http.Request) {
	id := domain.GroupID(r.PathValue("id"))
	var req GroupMessageRequest
	if !decode(w, r, &req) {
		return
	}
	err := s.host.Invoke(req.Caller, 0, func(env domain.Env) error {
		return s.contract.SendGroupMessage(env, id, req.EncryptedBody, req.Nonce, req.GroupKeyVersion)
	})
	s.finish(w, "send_group_message", req.Caller, err)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountID(r.PathValue("account"))
	var p domain.Profile
	var ok bool
	err := s.host.View(func() (err error) {
		p, ok, err = s.contract.GetProfile(account)
		return err
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no profile"})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleHasProfile(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountID(r.PathValue("account"))
	var ok bool
	err := s.host.View(func() (err error) {
		ok, err = s.contract.HasProfile(account)
		return err
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ExistsResponse{Registered: ok})
}

func (s *Server) handleGetGroup(w http.ResponseWriter, r *http.Request) {
	id := domain.GroupID(r.PathValue("id"))
	var g domain.GroupChat
	var ok bool
	err := s.host.View(func() (err error) {
		g, ok, err = s.contract.GetGroup(id)
		return err
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "no group"})
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	var st domain.Stats
	err := s.host.View(func() (err error) {
		st, err = s.contract.Stats()
		return err
	})
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	account := domain.AccountID(r.PathValue("account"))
	writeJSON(w, http.StatusOK, BalanceResponse{Balance: s.host.Balance(account)})
}

// finish logs the call outcome and writes the response.
func (s *Server) finish(w http.ResponseWriter, op string, caller domain.AccountID, err error) {
	if err != nil {
		s.log.Warn().Str("op", op).Str("caller", caller.String()).Err(err).Msg("call rejected")
		writeErr(w, err)
		return
	}
	s.log.Debug().Str("op", op).Str("caller", caller.String()).Msg("call committed")
	w.WriteHeader(http.StatusNoContent)
}

func decode(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "bad request: " + err.Error()})
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeErr maps contract rejections onto HTTP statuses.
func writeErr(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, whisper.ErrMalformedKey), errors.Is(err, whisper.ErrNoPayment):
		status = http.StatusBadRequest
	case errors.Is(err, whisper.ErrInsufficientDeposit), errors.Is(err, host.ErrInsufficientFunds):
		status = http.StatusPaymentRequired
	case errors.Is(err, whisper.ErrUnknownRecipient), errors.Is(err, whisper.ErrUnknownGroup):
		status = http.StatusNotFound
	case errors.Is(err, whisper.ErrDuplicateGroup), errors.Is(err, whisper.ErrAlreadyInitialized):
		status = http.StatusConflict
	case errors.Is(err, whisper.ErrNotInitialized):
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}
