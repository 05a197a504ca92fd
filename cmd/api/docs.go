package main

// @title           Chat Offline API
// @version         1.0
// @description     API simulada do cliente de chat, respondida a partir do armazenamento local

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
