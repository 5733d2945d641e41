package batch

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// The two batch-request contracts are never deployed for real: each constructor
// runs the whole batch against current state and returns the ABI-encoded result
// in place of runtime code, so a single eth_call with the creation bytecode
// evaluates every lookup at once. This package treats the bytecode as an
// opaque, versioned artifact and only appends constructor arguments to it.
//
// The checked-in blobs below are placeholders with the right prologue and
// shape for encoding tests; they are NOT runnable EVM code. Supply the
// compiled GetUniswapV2PairsBatchRequest / GetUniswapV2PoolDataBatchRequest
// artifacts through UseArtifacts before querying a live node.

func mustType(t string, components []abi.ArgumentMarshaling) abi.Type {
	typ, err := abi.NewType(t, "", components)
	if err != nil {
		panic(fmt.Sprintf("batch: invalid abi type %s: %v", t, err))
	}
	return typ
}

var (
	addressType      = mustType("address", nil)
	uint256Type      = mustType("uint256", nil)
	addressArrayType = mustType("address[]", nil)

	poolDataArrayType = mustType("tuple[]", []abi.ArgumentMarshaling{
		{Name: "tokenA", Type: "address"},
		{Name: "tokenADecimals", Type: "uint8"},
		{Name: "tokenB", Type: "address"},
		{Name: "tokenBDecimals", Type: "uint8"},
		{Name: "reserve0", Type: "uint112"},
		{Name: "reserve1", Type: "uint112"},
	})
)

// Constructor argument and return layouts for both contracts. The same
// constants serve the query builder and the response decoder, so the encoding
// and decoding sides cannot drift apart.
var (
	pairsQueryArgs  = abi.Arguments{{Type: uint256Type}, {Type: uint256Type}, {Type: addressType}}
	pairsReturnArgs = abi.Arguments{{Type: addressArrayType}}

	poolQueryArgs  = abi.Arguments{{Type: addressArrayType}}
	poolReturnArgs = abi.Arguments{{Type: poolDataArrayType}}
)

// Placeholder for the GetUniswapV2PairsBatchRequest creation bytecode.
// Constructor: (uint256 start, uint256 step, address factory).
var pairsBatchBin = common.FromHex("" +
	"608060405234801561001057600080fd5b5060405161b94f4f233a31376ad4a786221b7e1fa6" +
	"6bd5e9b3c28564b466b7e2362eb413e6eb9a05ef2e25c716860f9cfc173c7a5f05ffdbb1515d" +
	"f6bca889d903f811f8a9f51fb88e027c99da6f1b9cfa660975ba8b6bf2204e51d79f58edebd9" +
	"03deebcd574f5e8d36a9787b2644e9aa5f69c1e08b321e8547918dc5fc51dfdb223f32ae6f61" +
	"0ffe19342d4aeee50db300daa2319e37262af8bd8e0e31dbb464e4381a76b8561ee4a0128022" +
	"b6af2d0e337c37b7d96e80bcb41468dc8d33d96b356f4c74ec7b6e09b6faf5a2091f7fe595c4" +
	"b3419f19fb58f3a4e55015ecc92a17f7b150d2f867fc7d2d843611e58325c09baa6e9d8c132e" +
	"a06f0c0052fa2d8381f70c3466c9b247eede58866d21e898cfa47dd0aeac2b959121fae85bb4" +
	"29736da0142cbf66365f235aeb9fc4af03119347d3337e070e66c4ce6e23eac854d5e55442cf" +
	"6d12ca675582a4354bb5cfdeccfa4a2c81bdf7dc126b71d5e2b47c7467c22335420f12957248" +
	"ce97590f3e193523df027dea61deae10474c9f52184fce6a7f1d2ddda9dfc06c151f57ee1600" +
	"d92570a1cc20d9796477ef38730e9bd6c20c026e65dff4917e7026e9f35564b75e9a10c326d4" +
	"edb24c12ac81c41f6cb7dc3f1545e696b0698e40e77105c11812d85288f1ec8eb69892f1b077" +
	"42da6af2c848cecc74496f4911b77077c43ea195d376c8ea15636e11463dc00285a4c0f67aea" +
	"ff2a7abad2c7f8b4dee64c388bcfd4c493329986738d58eaf222b53bde90ee42553ef5150c55" +
	"cce3a97ab486fc71125cd90da89ceb5ca560dc90d4d4fa694608e194fd6723963548f679b7f0" +
	"298be0839844cbfe023f4b10861b2dda14fb91b4f73e2ec0a06a5dd17fc93b40b201f825e2af" +
	"3198dd90f886ee322e302f7988fcde3aaae9ca09a643d5de1076368300f804f7fd2f3c267d4c" +
	"142709bdf338e87af1f56c8909907db8b89fa6d23bccf0f9309b3e9389ddc599890bec8b0f1c" +
	"3737eba9a1b5b8100e36de8e6e3bfe3de74de0708cbd91b4aaa80736a0c80cd5dc674bc47937" +
	"78d831b9cdeb4a957c5f81bf00fe" +
	"")

// Placeholder for the GetUniswapV2PoolDataBatchRequest creation bytecode.
// Constructor: (address[] pools).
var poolDataBatchBin = common.FromHex("" +
	"608060405234801561001057600080fd5b50604051617d6e16a6664214cc892540dba3a4abc8" +
	"b8bf01dbf4db5bb84af32f29040eb8caaa565e481118138609eab8c6c0c6a9da011510471358" +
	"931a904d195fec4238ce03cfab6fb0b3ea15b8fe7fa3ec65fb407cfc0e5bd1032ef30b7f3d40" +
	"0883a77afdf7cee10069bdcbcc0b30f606f4c76132cce1154760bb9473e4eb3978c2b9e4e41d" +
	"aeb80789f3be0329a8e953ca2238cdb3bef5643a1d7f3d4c5e160bb4209663a1b7c07b8b0e27" +
	"34fae0e45748acd4fecd06eec6282c5e75caaeb4d18af488970f82a7135da33d89710df3ed32" +
	"74f16fe5b4e42187907811ef4b5f418e92797c8293d8d8d763d2783e5985caa0d7f2073c5f01" +
	"e32c2bc2b033a2e649928ff888759fba5892e397115503bb2bfc85ca011b61b2d21ab70fa941" +
	"a8636b7cea49361f4c4cbfd44358fcbe01418836971f62fd90826c7dd92a3f578cf7079aced0" +
	"2b7b920ab2ef3d8b452cb34ada28e2407538624fe5065fddde4c200bd6474d4178f53bac9e3e" +
	"5656f3a12ae99bb5073cbc3d06bfac734df825f0f5c099008ae72ba4e36d5da1bfe3272d4723" +
	"35c7927f0d8943458a56eac0135946634c1ab06e911a36f611026f08dde3b225f7db221fe984" +
	"7aa95d853b0649c17a320dcaeb07f0d3a99ef9ec4fb8a136b0dfa23044887cb58305b92eeeb2" +
	"4a3b116c2622c41b5ba144d41ed96fd7b633ddd69fbf5a96e6560b983d591cc27eead8dde43d" +
	"9532375e80552b7c2db75f8520ced8e657ea4a356bd2d1b9d3474c0f4f2fd9f636a21017151d" +
	"647152f510f857550fc9f3001270e044e02da46173bba96eec3e4c40fbfae881e4f6375da5da" +
	"066901eba58e83e220bce04ec30a81c4f042a25cfe7a7e805203bee76cc1446c5aadb2b8d6a8" +
	"5d93c18fb8042df277b1382fe6997699a471a0bdddfb6cc2a6c6fb57a7db18e81b68b609f904" +
	"73c4a92bee85bcabe10dc3f5e72572d36ebdc4e45f0462e480ff80f0f940a9ca7aba6d80cdf7" +
	"83e22d53748c64455a52a3a2cf21abbcb9f3c0a1109db3b9cff237a2ac06199367fba739b898" +
	"456d29f16f86f31a6f158cb27c86be7eae046c763b8ac271037848dcf88fe464a80000be7099" +
	"432d13028ab06dca4207467ec4c38eaabda3c19b5d0ec8d5fb96037848270de6c4c302c9b43a" +
	"066639d9c47056864dd8122e48e9b5bca91f2241e38af0785ba97bef2483f5b812ba4e9dd2f1" +
	"a88a80d74251a4da3223f5cd5c47cd5efee9f12f97ab9ccbce4e40501c6fb34f15ddb7277422" +
	"1716fc69d3299b0e50a1e238c7e5738f411afb3913ca5c15c1135957331caa082fbb419053a0" +
	"7ced3f40a19f8dba3a3ec41e0805e7395b994d1b2b117ad1abdd4b4489c84f56a3f4566ecb85" +
	"9698febd6c0c65fa2d8eb2a66e9a4cd5b236571a3bf09166f7d724496ce4f8a31c103edd3ec8" +
	"14ebb73a09838e11d96f60292accc4bfa2616e31485503c4923e916bcdabbf2f1bfa76b6f78d" +
	"f513d72613769fd200fe" +
	"")
