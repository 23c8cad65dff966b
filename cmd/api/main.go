// @title Restaurant App API
// @version 1.0
// @description Restaurant and menu-product listings with a demo phone/OTP auth flow.
// @BasePath /
package main

func main() {
	cfg := LoadConfiguration()

	app := NewApp(cfg)
	defer app.cleanup()

	app.InitializeServer()
	app.StartServer()
}
