package main

import "dealpipeline/internal/app"

// @title           Deal Pipeline API
// @version         1.0
// @description     Venture deal pipeline tracker: deals, memos, votes and an audit log.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization

func main() {
	app.Run()
}
