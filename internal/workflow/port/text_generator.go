package port

import (
	"context"

	"github.com/cloudwego/eino/schema"
)

// TextGenerator 定义工作流层对文本生成服务的最小依赖（port）。
// 单次调用，返回模型输出的原始文本。
type TextGenerator interface {
	Generate(ctx context.Context, msgs []*schema.Message) (string, error)
}

// TextGeneratorFactory 按提供商名称获取 TextGenerator，名称为空时返回默认提供商
type TextGeneratorFactory interface {
	Get(ctx context.Context, name string) (TextGenerator, error)
}
