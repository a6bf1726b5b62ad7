// Package electionmaps draws precinct-level election results as choropleth
// maps and keeps the hover and selection state of one or two linked maps in
// step.
package electionmaps

// go get github.com/golang/mock/gomock
// go install github.com/golang/mock/mockgen

// Generate mock views
//go:generate mockgen -destination mock_electionmaps/mock_electionmaps.go github.com/mlnow/electionmaps MapView,InfoPanel,Sender

// Build the browser client and pre-compress it.
//go:generate env GOOS=js GOARCH=wasm go build -o docs/electionmaps.wasm ./gui/cmd
