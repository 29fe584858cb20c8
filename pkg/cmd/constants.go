package cmd

const (
	RootCmdName  = "carval"
	RootCmdShort = "Vehicle market valuation engine"
	RootCmdLong  = `carval values used vehicles against synthesized market listings and
walks a twelve-step adjustment ledger from the market anchor to the final value.
It also projects value over time, running costs and cross-border market prices.`

	ServeCmdName  = "serve"
	ServeCmdShort = "Start the valuation HTTP API"
	ServeCmdLong  = "Start the valuation HTTP API and serve until SIGINT or SIGTERM."

	ValuateCmdName  = "valuate"
	ValuateCmdShort = "Value one vehicle described in a JSON file"
	ValuateCmdLong  = `Value one vehicle and print the result as JSON.

--analysis selects the output: valuation, timeline, tco, depreciation, swap,
regional, net-value, sell, buy, compare or all. compare uses --from and --to.`

	BatchCmdName  = "batch"
	BatchCmdShort = "Value a garage of vehicles concurrently"
	BatchCmdLong  = "Value every vehicle of a JSON array and print one summary per vehicle in input order."
)
