package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/auth"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/cache"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/config"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/promocao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/simulacao"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/taxas"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/usuario"
	"github.com/Opers-Link/apolino-ai-assist-sub000/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()
	cfg := config.Carregar()

	if err := auth.CarregarSegredo(cfg.JWTSecret); err != nil {
		log.Fatal(err)
	}

	database, err := db.GetDB(cfg)
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&taxas.TaxaBancaria{},
		&promocao.AjusteLTV{},
		&usuario.Usuario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := taxas.Seed(database); err != nil {
		log.Fatal("Erro ao semear taxas:", err)
	}
	if err := promocao.Seed(database); err != nil {
		log.Fatal("Erro ao semear promoções:", err)
	}

	// Cache da tabela de taxas: Redis quando configurado, memória caso contrário
	var c cache.Cache
	if cfg.RedisAddr != "" {
		c = cache.NewRedisCache(cfg.RedisAddr)
	} else {
		c = cache.NewMemoryCache()
	}

	// Repositórios e serviços
	taxasRepo := taxas.NewRepository(database)
	taxasComCache := taxas.NewRepositorioComCache(taxasRepo, c, cfg.CacheTTL)
	promocaoRepo := promocao.NewRepository(database)
	servicoSimulacao := simulacao.NovoServico(taxasComCache, promocaoRepo, cfg.WebhookSemResultadoURL)

	// Handlers
	taxasHandler := taxas.NewHandler(taxasRepo)
	promocaoHandler := promocao.NewHandler(promocaoRepo)
	simulacaoHandler := simulacao.NewHandler(servicoSimulacao)
	usuarioHandler := usuario.NewHandler(database)

	r := novoRouter(simulacaoHandler, taxasHandler, promocaoHandler, usuarioHandler)

	// CORS permissivo: o widget roda embarcado em sites de terceiros
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + cfg.Porta)
	log.Fatal(http.ListenAndServe(":"+cfg.Porta, handler))
}

// novoRouter monta as rotas públicas e administrativas.
// O subrouter de admin vem antes das rotas públicas para que
// GET /taxas?todas=true caia no middleware autenticado, e não na
// listagem pública (que só devolve taxas ativas).
func novoRouter(
	simulacaoHandler *simulacao.Handler,
	taxasHandler *taxas.Handler,
	promocaoHandler *promocao.Handler,
	usuarioHandler *usuario.Handler,
) *mux.Router {
	r := mux.NewRouter()

	// Rotas administrativas (JWT + admin)
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)

	admin.HandleFunc("/taxas", taxasHandler.ListarTodas).Methods("GET").Queries("todas", "true")
	admin.HandleFunc("/taxas", taxasHandler.Criar).Methods("POST")
	admin.HandleFunc("/taxas/{id}", taxasHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/taxas/{id}", taxasHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/taxas/{id}", taxasHandler.Deletar).Methods("DELETE")

	admin.HandleFunc("/promocoes", promocaoHandler.Listar).Methods("GET")
	admin.HandleFunc("/promocoes", promocaoHandler.Criar).Methods("POST")
	admin.HandleFunc("/promocoes/{id}", promocaoHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/promocoes/{id}", promocaoHandler.Deletar).Methods("DELETE")

	admin.HandleFunc("/usuarios", usuarioHandler.CriarUsuario).Methods("POST")
	admin.HandleFunc("/usuarios", usuarioHandler.ListarUsuarios).Methods("GET")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.DeletarUsuario).Methods("DELETE")

	// Rotas públicas
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "ok")
	}).Methods("GET")
	r.HandleFunc("/simulacoes", simulacaoHandler.Simular).Methods("POST")
	r.HandleFunc("/taxas", taxasHandler.Listar).Methods("GET")
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	return r
}
