// Package gaussmoat sieves Gaussian primes and explores Gaussian moats:
// the gaps a walker with a bounded step cannot cross.
//
// What is a Gaussian moat?
//
//	Join two Gaussian primes by an edge when they are at most a jump
//	threshold j apart. The component of 1+i is finite exactly when it is
//	walled in by a moat wider than j. Known moats exist for every j tested;
//	whether a walk to infinity exists for some j is open.
//
// Under the hood, everything is organized in four packages and a command:
//
//	gint/          Gaussian integer arithmetic, ordering, trial-division oracle
//	sieve/         octant, growing-ring, sector and block sieves
//	moat/          origin, segmented and strip explorers over the sieves
//	bridge/        flat pair, count and buffer listings for foreign hosts
//	cmd/gintmoat/  the command-line explorer
//
// Quick example:
//
//	cfg, _ := moat.NewConfig(math.Sqrt2)
//	res, _ := moat.Explore(ctx, cfg)
//	// res.Size == 14, res.Max == 11+4i, res.Status == moat.StatusMoat
//
//	go install github.com/katalvlaran/gaussmoat/cmd/gintmoat@latest
package gaussmoat
