package resources

import (
	"errors"
	"fmt"
	"github.com/magic-lib/go-plat-pool/hashpool"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrNilRedisClient 创建 Pipeline 时没有传入 redis 客户端
	ErrNilRedisClient = errors.New("resources: redis client is nil")
	// ErrClientMismatch 传入的客户端与描述中的地址或库不一致，或不是单节点客户端
	ErrClientMismatch = errors.New("resources: redis client does not match pipeline info")
)

var (
	_ hashpool.Resource                               = (*Pipeline)(nil)
	_ hashpool.Info[redis.UniversalClient, *Pipeline] = PipelineInfo{}
)

// PipelineInfo 按目标 redis 区分的 Pipeline 描述，客户端本身通过上下文传入。
// 同一个描述下的 pipeline 可以来自任意一个指向 Addr/DB 的客户端，
// 池中还有空闲 pipeline 时不要关闭创建它们的客户端。
type PipelineInfo struct {
	Addr string
	DB   int
}

// Pipeline 可复用的 redis pipeline，Exec 之前排队的命令在归还时丢弃
type Pipeline struct {
	redis.Pipeliner
}

// Create 从客户端创建 pipeline，不会建立连接；只接受 Addr、DB 与描述一致的单节点客户端
func (i PipelineInfo) Create(cli redis.UniversalClient) (*Pipeline, error) {
	if cli == nil {
		return nil, ErrNilRedisClient
	}
	node, ok := cli.(interface{ Options() *redis.Options })
	if !ok {
		return nil, fmt.Errorf("%w: unsupported client type %T", ErrClientMismatch, cli)
	}
	opt := node.Options()
	if opt.Addr != i.Addr || opt.DB != i.DB {
		return nil, fmt.Errorf("%w: client %s/%d, info %s/%d", ErrClientMismatch, opt.Addr, opt.DB, i.Addr, i.DB)
	}
	return &Pipeline{
		Pipeliner: cli.Pipeline(),
	}, nil
}

// Clear 丢弃未执行的命令
func (p *Pipeline) Clear() {
	p.Discard()
}
