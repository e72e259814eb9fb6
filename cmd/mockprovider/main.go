// Command mockprovider serves both upstream catalog shapes locally so the
// backend can be developed without reaching the real mock APIs. Point
// BRAZILIAN_PROVIDER_URL and EUROPEAN_PROVIDER_URL at it.
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

type brazilianProduct struct {
	ID        string  `json:"id"`
	Nome      string  `json:"nome"`
	Preco     float64 `json:"preco"`
	Imagem    string  `json:"imagem"`
	Descricao string  `json:"descricao"`
}

type europeanProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Gallery     []string `json:"gallery"`
	Description string   `json:"description"`
}

var brazilianCatalog = []brazilianProduct{
	{
		ID:        "1",
		Nome:      "Café Gourmet Brasil",
		Preco:     24.90,
		Imagem:    "https://placehold.co/200x200?text=Cafe+Gourmet",
		Descricao: "Café especial 100% arábica, torrado artesanalmente no Brasil.",
	},
	{
		ID:        "2",
		Nome:      "Queijo Canastra Artesanal",
		Preco:     59.90,
		Imagem:    "https://placehold.co/200x200?text=Queijo+Canastra",
		Descricao: "Queijo mineiro maturado, sabor marcante e textura cremosa.",
	},
}

var europeanCatalog = []europeanProduct{
	{
		ID:          "1",
		Name:        "Chocolate Belga Premium",
		Price:       39.90,
		Gallery:     []string{"https://placehold.co/200x200?text=Chocolate+Belga"},
		Description: "Chocolate importado da Bélgica, 70% cacau, sabor intenso.",
	},
	{
		ID:          "2",
		Name:        "Azeite de Oliva Extra Virgem",
		Price:       49.90,
		Gallery:     []string{"https://placehold.co/200x200?text=Azeite+Portugal"},
		Description: "Azeite de oliva extra virgem, prensado a frio, origem Portugal.",
	},
}

func main() {
	r := gin.Default()

	r.GET("/devnology/brazilian_provider", func(c *gin.Context) {
		c.JSON(http.StatusOK, brazilianCatalog)
	})
	r.GET("/devnology/brazilian_provider/:id", func(c *gin.Context) {
		for _, p := range brazilianCatalog {
			if p.ID == c.Param("id") {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	r.GET("/devnology/european_provider", func(c *gin.Context) {
		c.JSON(http.StatusOK, europeanCatalog)
	})
	r.GET("/devnology/european_provider/:id", func(c *gin.Context) {
		for _, p := range europeanCatalog {
			if p.ID == c.Param("id") {
				c.JSON(http.StatusOK, p)
				return
			}
		}
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	port := os.Getenv("MOCK_PROVIDER_PORT")
	if port == "" {
		port = "4010"
	}

	log.Println("mock provider listening on :" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
